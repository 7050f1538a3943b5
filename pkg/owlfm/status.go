package owlfm

import (
	"fmt"
	"strconv"
	"time"

	"github.com/owltech/owlfm/pkg/nav"
	"github.com/owltech/owlfm/pkg/previewers"
)

const statusNone = "Current File: None Selected"
const statusDirView = "Current File: None Selected (Directory View)"
const statusReadFailed = "Current File: Read Failed"
const statusNoMeta = "Current File: Metadata unavailable"

// formatFileStatus renders the status line for a successfully read file.
// Metadata is reported when the stat probe worked, and its absence is
// stated rather than hidden.
func formatFileStatus(name string, fc *nav.FileContent) string {
	if fc.Meta == nil {
		return statusNoMeta
	}
	return fmt.Sprintf("Current File: %s | Size: %d bytes | Modified: %s",
		name, fc.Meta.Size, fc.Meta.ModTime.Format(time.RFC3339))
}

func formatImageMeta(meta *previewers.ImageMeta) string {
	return " | Image: " + meta.Format + " " +
		strconv.Itoa(meta.Width) + "x" + strconv.Itoa(meta.Height)
}
