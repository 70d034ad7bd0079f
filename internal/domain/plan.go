package domain

// Summary is the outcome of one execution.
type Summary struct {
	TotalFiles     int
	FilesConverted int
	Skipped        int
	Corrupt        []string
	Unreadable     []string
	WriteFailed    bool
	WasCanceled    bool
}

type Action string

const (
	ActionConvert    Action = "convert"
	ActionSkip       Action = "skip"
	ActionCorrupt    Action = "corrupt"
	ActionUnreadable Action = "unreadable"
)

// PlanItem is what an execution would do with one image file.
type PlanItem struct {
	File       ImageFile
	Action     Action
	Width      int
	Height     int
	Reason     SkipReason
	TargetPath string
	RenamePath string
}

// Plan lists every candidate image in the source directory without touching any file.
type Plan struct {
	Items        []PlanItem
	IgnoredCount int
	ConvertCount int
	SkipCount    int
	ErrorCount   int
}
