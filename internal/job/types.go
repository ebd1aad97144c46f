package job

// Direction selects which way a batch converts.
type Direction int

const (
	ToFLAC Direction = iota
	ToWAV
)

func (d Direction) SourceExt() string {
	if d == ToWAV {
		return ".flac"
	}
	return ".wav"
}

func (d Direction) TargetExt() string {
	if d == ToWAV {
		return ".wav"
	}
	return ".flac"
}

func (d Direction) String() string {
	if d == ToWAV {
		return "FLAC -> WAV"
	}
	return "WAV -> FLAC"
}

type Task struct {
	SourcePath string
	TargetPath string
	Direction  Direction
}

type Result struct {
	Task     Task
	Warnings []string
	Error    error
}
