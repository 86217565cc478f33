// Command subclean strips stray whitespace from SubRip subtitle files, drops
// cues left empty, renumbers the rest and saves the result as UTF-8.
//
// Usage:
//
//	subclean -i movie.srt              # writes Cleaned-movie.srt next to the input
//	subclean -i movie.srt -o out.srt   # explicit output path
//	subclean -i movie.srt -r           # overwrite the input in place
//	subclean -i movie.srt -e cp1252    # skip charset detection
//	subclean config init               # write a sample settings file
package main
