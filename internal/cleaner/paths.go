package cleaner

import (
	"path/filepath"

	"subclean/internal/failure"
)

// Flags carries the raw command-line options for one run.
type Flags struct {
	InputFilename   string
	OutputFilename  string
	Encoding        string
	ReplaceOriginal bool
}

// RunConfig is the resolved, immutable description of one run.
type RunConfig struct {
	InputPath  string
	OutputPath string
	// Encoding is the user-forced input encoding. Empty means detect.
	Encoding         string
	OverwriteInPlace bool
}

// ResolveRunConfig derives the output path from flags. Without an explicit
// output or in-place flag the output sits next to the input with prefix
// prepended to its base name. Paths and the encoding label are kept verbatim;
// only the empty string counts as unset.
func ResolveRunConfig(flags Flags, prefix string) (RunConfig, error) {
	input := flags.InputFilename
	output := flags.OutputFilename

	if output != "" && flags.ReplaceOriginal {
		return RunConfig{}, failure.Wrap(failure.ErrConfig, "options", "mutually exclusive options",
			"cannot combine --replace-original and --output-filename", nil)
	}
	if input == "" {
		return RunConfig{}, failure.Wrap(failure.ErrConfig, "options", "resolve", "input filename is required", nil)
	}

	rc := RunConfig{
		InputPath:        input,
		Encoding:         flags.Encoding,
		OverwriteInPlace: flags.ReplaceOriginal,
	}
	switch {
	case output != "":
		rc.OutputPath = output
	case flags.ReplaceOriginal:
		rc.OutputPath = input
	default:
		rc.OutputPath = filepath.Join(filepath.Dir(input), prefix+filepath.Base(input))
	}
	return rc, nil
}
