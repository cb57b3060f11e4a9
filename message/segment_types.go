package message

import (
	"encoding/json"
	"fmt"

	"github.com/c360/chatstreams/chat"
)

// At mentions a single group member.
//
// Display is the rendered "@name" string supplied by the gateway. It is
// presentation-only: two mentions of the same target are equal regardless of
// how either was displayed.
type At struct {
	Target  chat.UserID `json:"target"`
	Display string      `json:"display,omitempty"`
}

// Type returns SegmentAt.
func (s At) Type() SegmentType { return SegmentAt }

// Stringify renders the mention as a reference block carrying the target id.
func (s At) Stringify() string { return fmt.Sprintf("{at:%d}", s.Target) }

// Equals compares mentions by target id only.
func (s At) Equals(other Segment) bool {
	o, ok := other.(At)
	return ok && s.Target == o.Target
}

// MarshalJSON emits the discriminator followed by the mention fields.
func (s At) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type    SegmentType `json:"type"`
		Target  chat.UserID `json:"target"`
		Display string      `json:"display,omitempty"`
	}
	return json.Marshal(wire{SegmentAt, s.Target, s.Display})
}

func (At) sealed() {}

// AtAll mentions everyone in a group. It carries no data; all instances are
// equal.
type AtAll struct{}

// Type returns SegmentAtAll.
func (s AtAll) Type() SegmentType { return SegmentAtAll }

// Stringify renders the mention-everyone block.
func (s AtAll) Stringify() string { return "{at_all}" }

// Equals reports true for any other AtAll.
func (s AtAll) Equals(other Segment) bool {
	_, ok := other.(AtAll)
	return ok
}

// MarshalJSON emits the discriminator; AtAll has no fields of its own.
func (s AtAll) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type SegmentType `json:"type"`
	}
	return json.Marshal(wire{SegmentAtAll})
}

func (AtAll) sealed() {}

// Face is a platform emoji, identified by numeric id, by name, or both.
type Face struct {
	FaceID *int32 `json:"faceId,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Type returns SegmentFace.
func (s Face) Type() SegmentType { return SegmentFace }

// Stringify renders the emoji by id when present, by name otherwise.
func (s Face) Stringify() string {
	if s.FaceID != nil {
		return fmt.Sprintf("{face:%d}", *s.FaceID)
	}
	return fmt.Sprintf("{face:%s}", s.Name)
}

// Equals prefers id-to-id comparison when both sides carry an id and falls
// back to the name otherwise.
func (s Face) Equals(other Segment) bool {
	o, ok := other.(Face)
	if !ok {
		return false
	}
	if s.FaceID != nil && o.FaceID != nil {
		return *s.FaceID == *o.FaceID
	}
	return s.Name == o.Name
}

// MarshalJSON emits the discriminator followed by the emoji fields.
func (s Face) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type   SegmentType `json:"type"`
		FaceID *int32      `json:"faceId,omitempty"`
		Name   string      `json:"name,omitempty"`
	}
	return json.Marshal(wire{SegmentFace, s.FaceID, s.Name})
}

func (Face) sealed() {}

// Plain is a run of plain text.
type Plain struct {
	Text string `json:"text"`
}

// Type returns SegmentPlain.
func (s Plain) Type() SegmentType { return SegmentPlain }

// Stringify escapes the text per the canonical escaping grammar.
func (s Plain) Stringify() string { return Escape(s.Text) }

// Equals compares text exactly.
func (s Plain) Equals(other Segment) bool {
	o, ok := other.(Plain)
	return ok && s.Text == o.Text
}

// MarshalJSON emits the discriminator followed by the raw (unescaped) text.
func (s Plain) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type SegmentType `json:"type"`
		Text string      `json:"text"`
	}
	return json.Marshal(wire{SegmentPlain, s.Text})
}

func (Plain) sealed() {}

// Image is a picture, identified by any of a server-side id, a remote URL,
// or a path local to the gateway. Absent fields are empty strings; at least
// one is expected to be set but this is not enforced structurally.
type Image struct {
	ImageID string `json:"imageId,omitempty"`
	URL     string `json:"url,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Type returns SegmentImage.
func (s Image) Type() SegmentType { return SegmentImage }

// Stringify renders the first available identity, preferring id > url > path.
func (s Image) Stringify() string {
	return fmt.Sprintf("{image:%s}", firstImageIdentity(s.ImageID, s.URL, s.Path))
}

// Equals compares whichever identity both sides have populated, preferring
// id > url > path.
func (s Image) Equals(other Segment) bool {
	o, ok := other.(Image)
	return ok && imageIdentityEqual(s.ImageID, s.URL, s.Path, o.ImageID, o.URL, o.Path)
}

// MarshalJSON emits the discriminator followed by the populated identities.
func (s Image) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type    SegmentType `json:"type"`
		ImageID string      `json:"imageId,omitempty"`
		URL     string      `json:"url,omitempty"`
		Path    string      `json:"path,omitempty"`
	}
	return json.Marshal(wire{SegmentImage, s.ImageID, s.URL, s.Path})
}

func (Image) sealed() {}

// FlashImage is a picture shown once and then hidden. It carries the same
// identities as Image but is a distinct kind: a flash image never equals a
// regular one.
type FlashImage struct {
	ImageID string `json:"imageId,omitempty"`
	URL     string `json:"url,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Type returns SegmentFlashImage.
func (s FlashImage) Type() SegmentType { return SegmentFlashImage }

// Stringify renders the first available identity, preferring id > url > path.
func (s FlashImage) Stringify() string {
	return fmt.Sprintf("{flash_image:%s}", firstImageIdentity(s.ImageID, s.URL, s.Path))
}

// Equals compares whichever identity both sides have populated, preferring
// id > url > path.
func (s FlashImage) Equals(other Segment) bool {
	o, ok := other.(FlashImage)
	return ok && imageIdentityEqual(s.ImageID, s.URL, s.Path, o.ImageID, o.URL, o.Path)
}

// MarshalJSON emits the discriminator followed by the populated identities.
func (s FlashImage) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type    SegmentType `json:"type"`
		ImageID string      `json:"imageId,omitempty"`
		URL     string      `json:"url,omitempty"`
		Path    string      `json:"path,omitempty"`
	}
	return json.Marshal(wire{SegmentFlashImage, s.ImageID, s.URL, s.Path})
}

func (FlashImage) sealed() {}

// XML is an opaque XML card payload.
type XML struct {
	Content string `json:"xml"`
}

// Type returns SegmentXML.
func (s XML) Type() SegmentType { return SegmentXML }

// Stringify renders the payload as a reference block.
func (s XML) Stringify() string { return fmt.Sprintf("{xml:%s}", s.Content) }

// Equals compares the payload exactly.
func (s XML) Equals(other Segment) bool {
	o, ok := other.(XML)
	return ok && s.Content == o.Content
}

// MarshalJSON emits the discriminator followed by the payload.
func (s XML) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type    SegmentType `json:"type"`
		Content string      `json:"xml"`
	}
	return json.Marshal(wire{SegmentXML, s.Content})
}

func (XML) sealed() {}

// JSON is an opaque JSON card payload, kept as raw text.
type JSON struct {
	Content string `json:"json"`
}

// Type returns SegmentJSON.
func (s JSON) Type() SegmentType { return SegmentJSON }

// Stringify renders the payload as a reference block.
func (s JSON) Stringify() string { return fmt.Sprintf("{json:%s}", s.Content) }

// Equals compares the payload exactly.
func (s JSON) Equals(other Segment) bool {
	o, ok := other.(JSON)
	return ok && s.Content == o.Content
}

// MarshalJSON emits the discriminator followed by the payload.
func (s JSON) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type    SegmentType `json:"type"`
		Content string      `json:"json"`
	}
	return json.Marshal(wire{SegmentJSON, s.Content})
}

func (JSON) sealed() {}

// App is an opaque mini-program card payload.
type App struct {
	Content string `json:"content"`
}

// Type returns SegmentApp.
func (s App) Type() SegmentType { return SegmentApp }

// Stringify renders the payload as a reference block.
func (s App) Stringify() string { return fmt.Sprintf("{app:%s}", s.Content) }

// Equals compares the payload exactly.
func (s App) Equals(other Segment) bool {
	o, ok := other.(App)
	return ok && s.Content == o.Content
}

// MarshalJSON emits the discriminator followed by the payload.
func (s App) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type    SegmentType `json:"type"`
		Content string      `json:"content"`
	}
	return json.Marshal(wire{SegmentApp, s.Content})
}

func (App) sealed() {}

// Poke is a nudge message; Name selects the poke animation.
type Poke struct {
	Name string `json:"name"`
}

// Type returns SegmentPoke.
func (s Poke) Type() SegmentType { return SegmentPoke }

// Stringify renders the poke as a reference block.
func (s Poke) Stringify() string { return fmt.Sprintf("{poke:%s}", s.Name) }

// Equals compares the poke name exactly.
func (s Poke) Equals(other Segment) bool {
	o, ok := other.(Poke)
	return ok && s.Name == o.Name
}

// MarshalJSON emits the discriminator followed by the poke name.
func (s Poke) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type SegmentType `json:"type"`
		Name string      `json:"name"`
	}
	return json.Marshal(wire{SegmentPoke, s.Name})
}

func (Poke) sealed() {}

// firstImageIdentity picks the preferred populated identity of an image.
func firstImageIdentity(id, url, path string) string {
	switch {
	case id != "":
		return id
	case url != "":
		return url
	default:
		return path
	}
}

// imageIdentityEqual compares two images by whichever identity both sides
// carry, in id > url > path preference order.
func imageIdentityEqual(aID, aURL, aPath, bID, bURL, bPath string) bool {
	if aID != "" && bID != "" {
		return aID == bID
	}
	if aURL != "" && bURL != "" {
		return aURL == bURL
	}
	return aPath == bPath
}
