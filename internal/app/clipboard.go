package app

import "github.com/atotto/clipboard"

// writeClipboard is swapped in tests so they never touch the system
// clipboard.
var writeClipboard = clipboard.WriteAll

// copySelectedDeploymentID copies the selected deployment's ID to the system
// clipboard, e.g. to pass it to `railway logs`.
func (m *Model) copySelectedDeploymentID() {
	loc, ok := m.selected()
	if !ok {
		m.setStatus("No deployment selected")
		return
	}
	if err := writeClipboard(loc.Deployment.ID); err != nil {
		m.setStatusError("Clipboard copy failed", err, "deployment", loc.Deployment.ID)
		return
	}
	m.setStatus("Copied deployment ID " + loc.Deployment.ID)
}
