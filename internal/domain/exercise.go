package domain

// MediaType distinguishes the kind of media attached to an exercise.
type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeImage MediaType = "image"
)

// Exercise is a guided exercise, optionally tied to a machine type and a
// specific machine. Both references are optional and may dangle; displays
// fall back to placeholders when resolution fails.
type Exercise struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type,omitempty"`    // MachineType id, optional
	Machine   string    `json:"machine,omitempty"` // Machine id, optional
	Media     string    `json:"media"`             // URI or media object key
	MediaType MediaType `json:"mediaType"`
}

// ExercisePatch describes a partial update to an Exercise.
type ExercisePatch struct {
	Name      *string
	Type      *string
	Machine   *string
	Media     *string
	MediaType *MediaType
}

func (p ExercisePatch) Apply(e *Exercise) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Machine != nil {
		e.Machine = *p.Machine
	}
	if p.Media != nil {
		e.Media = *p.Media
	}
	if p.MediaType != nil {
		e.MediaType = *p.MediaType
	}
}
