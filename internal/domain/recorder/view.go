package recorder

// StatusView is the per-status guidance shown while the recorder is not yet
// capturing: a title, body paragraphs, and whether the caller should offer an
// explicit way back instead of a silent retry.
type StatusView struct {
	Title          string
	Body           []string
	ShowAppLinks   bool
	ShowBackToHome bool
}

// ViewFor derives the guidance for a status. Granted and recording states
// carry no guidance.
func ViewFor(status Status) StatusView {
	switch status {
	case StatusNotInitialized, StatusWaitingForAccess:
		return StatusView{
			Title: "Allow your browser to use the microphone",
			Body:  permissionBody,
		}
	case StatusAccessDenied:
		return StatusView{
			Title: "Microphone permission was not granted",
			Body:  permissionBody,
		}
	case StatusNotSupported:
		return StatusView{
			Title: "The service does not work in your browser",
			Body: []string{
				"Donating speech in the browser works best with the latest version of Chrome or Firefox.",
				"You can also download the Project name app:",
			},
			ShowAppLinks:   true,
			ShowBackToHome: true,
		}
	default:
		return StatusView{}
	}
}

var permissionBody = []string{
	"To donate speech, you need to allow your browser to use the microphone during recording. The service does not use the camera. Only audio is recorded.",
	"Donated speech is handled confidentially, and the universities' Language Bank is responsible for its secure storage.",
}
