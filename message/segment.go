package message

import (
	"encoding/json"

	"github.com/c360/chatstreams/errors"
)

// SegmentType identifies one of the fixed set of segment alternatives.
// The values are exactly the discriminator tags used in the JSON wire form,
// so the enum doubles as the type-name registry.
type SegmentType string

// The full, closed set of segment alternatives. New kinds are a protocol
// change, not an extension point.
const (
	SegmentAt         SegmentType = "At"
	SegmentAtAll      SegmentType = "AtAll"
	SegmentFace       SegmentType = "Face"
	SegmentPlain      SegmentType = "Plain"
	SegmentImage      SegmentType = "Image"
	SegmentFlashImage SegmentType = "FlashImage"
	SegmentXML        SegmentType = "Xml"
	SegmentJSON       SegmentType = "Json"
	SegmentApp        SegmentType = "App"
	SegmentPoke       SegmentType = "Poke"
)

// segmentTypeNames is the static ordered discriminator table. It is built
// once at startup and never mutated, so it is safe to share across
// goroutines without synchronization.
var segmentTypeNames = [...]SegmentType{
	SegmentAt, SegmentAtAll, SegmentFace, SegmentPlain, SegmentImage,
	SegmentFlashImage, SegmentXML, SegmentJSON, SegmentApp, SegmentPoke,
}

// SegmentTypes returns the ordered list of all segment discriminator tags.
func SegmentTypes() []SegmentType {
	types := make([]SegmentType, len(segmentTypeNames))
	copy(types, segmentTypeNames[:])
	return types
}

// IsValid checks if the segment type is one of the registered discriminators.
func (st SegmentType) IsValid() bool {
	for _, name := range segmentTypeNames {
		if st == name {
			return true
		}
	}
	return false
}

// String returns the wire discriminator for the segment type.
func (st SegmentType) String() string {
	return string(st)
}

// Segment is one node of a message chain: exactly one of the fixed content
// alternatives (mention, plain text, emoji, image, ...). The set is closed;
// only types in this package implement the interface.
//
// Segments are plain values. Copying one is cheap and never shares mutable
// state, so chains can move freely between goroutines.
//
// To inspect a segment whose kind is not known, either switch on Type() or
// use a type assertion, which plays the role of a checked variant access:
//
//	if at, ok := seg.(At); ok {
//	    reply(at.Target)
//	}
type Segment interface {
	// Type returns the discriminator tag of the active alternative.
	Type() SegmentType

	// Stringify renders the canonical textual form of the segment.
	// Plain text is escaped; every other kind renders as a reference
	// block such as "{at:123456789}".
	Stringify() string

	// Equals compares two segments using the alternative's own equality
	// rule. Segments of different kinds are never equal.
	Equals(other Segment) bool

	// Segments marshal to a flat JSON object carrying their discriminator
	// in a "type" field.
	json.Marshaler

	// sealed keeps the alternative set closed to this package.
	sealed()
}

// segmentDecoders maps each discriminator tag to its alternative's decoder.
// Like the name table it is immutable after package init.
var segmentDecoders = map[SegmentType]func(data []byte) (Segment, error){
	SegmentAt:         decodeSegment[At],
	SegmentAtAll:      decodeSegment[AtAll],
	SegmentFace:       decodeSegment[Face],
	SegmentPlain:      decodeSegment[Plain],
	SegmentImage:      decodeSegment[Image],
	SegmentFlashImage: decodeSegment[FlashImage],
	SegmentXML:        decodeSegment[XML],
	SegmentJSON:       decodeSegment[JSON],
	SegmentApp:        decodeSegment[App],
	SegmentPoke:       decodeSegment[Poke],
}

// decodeSegment decodes the remaining fields of a discriminated object into
// a fresh instance of the alternative T.
func decodeSegment[T Segment](data []byte) (Segment, error) {
	var seg T
	if err := json.Unmarshal(data, &seg); err != nil {
		return nil, shapeError(seg.Type(), err)
	}
	return seg, nil
}

// shapeError converts a json decode failure into a ShapeMismatchError scoped
// to the resolved alternative.
func shapeError(tag SegmentType, err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return &errors.ShapeMismatchError{
			Tag:    string(tag),
			Field:  typeErr.Field,
			Reason: "expected " + typeErr.Type.String() + ", got " + typeErr.Value,
		}
	}
	return &errors.ShapeMismatchError{Tag: string(tag), Reason: err.Error()}
}

// ParseSegment decodes a single segment from its flat JSON object form.
// The object must carry a "type" field naming a registered alternative;
// an unrecognized tag yields an UnknownVariantError and no partial value.
func ParseSegment(data []byte) (Segment, error) {
	var head struct {
		Type SegmentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.WrapInvalid(err, "message", "ParseSegment", "read discriminator")
	}

	decode, ok := segmentDecoders[head.Type]
	if !ok {
		return nil, &errors.UnknownVariantError{Wrapper: "segment", Tag: string(head.Type)}
	}
	return decode(data)
}
