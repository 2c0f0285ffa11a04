package deploy

// Status is a Railway deployment status as reported by the API.
type Status string

const (
	StatusBuilding      Status = "BUILDING"
	StatusCrashed       Status = "CRASHED"
	StatusDeploying     Status = "DEPLOYING"
	StatusFailed        Status = "FAILED"
	StatusInitializing  Status = "INITIALIZING"
	StatusNeedsApproval Status = "NEEDS_APPROVAL"
	StatusQueued        Status = "QUEUED"
	StatusRemoved       Status = "REMOVED"
	StatusRemoving      Status = "REMOVING"
	StatusSkipped       Status = "SKIPPED"
	StatusSleeping      Status = "SLEEPING"
	StatusSuccess       Status = "SUCCESS"
	StatusWaiting       Status = "WAITING"
)

// Tone is the color family a renderer should use.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneInfo
	ToneWarning
	ToneDanger
)

// Style describes how a deployment with a given status is drawn. An empty
// Label means no badge.
type Style struct {
	Label string
	Item  Tone
	Badge Tone
}

// HasBadge reports whether the status gets a badge next to its label.
func (s Style) HasBadge() bool { return s.Label != "" }

var statusStyles = map[Status]Style{
	StatusSuccess:   {Label: "Active", Item: ToneSuccess, Badge: ToneSuccess},
	StatusFailed:    {Label: "Failed", Item: ToneDanger, Badge: ToneDanger},
	StatusRemoved:   {Label: "Removed"},
	StatusBuilding:  {Label: "Building", Badge: ToneInfo},
	StatusDeploying: {Label: "Deploying", Badge: ToneInfo},
	StatusSleeping:  {Label: "Sleeping", Item: ToneWarning, Badge: ToneWarning},
	StatusCrashed:   {Label: "Crashed", Item: ToneDanger, Badge: ToneDanger},
	StatusSkipped:   {Label: "Skipped"},
	StatusWaiting:   {Label: "Cancelled"},
}

// Style returns the drawing style for s. Statuses without an entry, such as
// NEEDS_APPROVAL, INITIALIZING or REMOVING, are neutral and have no badge.
func (s Status) Style() Style {
	return statusStyles[s]
}

// Known reports whether s is one of the statuses Railway documents.
func (s Status) Known() bool {
	switch s {
	case StatusBuilding, StatusCrashed, StatusDeploying, StatusFailed,
		StatusInitializing, StatusNeedsApproval, StatusQueued, StatusRemoved,
		StatusRemoving, StatusSkipped, StatusSleeping, StatusSuccess, StatusWaiting:
		return true
	}
	return false
}
