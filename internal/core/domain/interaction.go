package domain

// ContentType is the kind of content a user can interact with.
type ContentType string

const (
	ContentJob      ContentType = "job"
	ContentEvent    ContentType = "event"
	ContentAd       ContentType = "ad"
	ContentProperty ContentType = "property"
)

// IsValid reports whether the content type is one the platform rewards.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentJob, ContentEvent, ContentAd, ContentProperty:
		return true
	}
	return false
}

// InteractionAction is a rewardable user action.
type InteractionAction string

const (
	ActionView    InteractionAction = "view"
	ActionContact InteractionAction = "contact"
)

// Interaction records a single user action against a piece of content.
type Interaction struct {
	UserID      string            `json:"userID"`
	ContentID   string            `json:"contentID"`
	ContentType ContentType       `json:"contentType"`
	Action      InteractionAction `json:"action"`
}
