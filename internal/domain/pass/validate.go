package pass

import (
	"fmt"
	"strings"
)

// ValidationError aggregates every rule violation found in a pass.
// Validation is collect-all: the caller sees the complete list and can
// fix multiple problems in one iteration.
type ValidationError struct {
	// Messages are human-readable rule violations, in check order.
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "pass validation failed: " + strings.Join(e.Messages, "; ")
}

const pngExtension = "png"

// Validate checks the pass's image set against the variant's rules.
// It returns nil or a *ValidationError carrying every violation;
// it never mutates the pass and performs no I/O.
func (p *Pass) Validate() error {
	var messages []string

	allowed, known := allowedImageRoles[p.Type]
	if !known {
		messages = append(messages, fmt.Sprintf("unknown pass type %q", string(p.Type)))
	}

	var hasIcon, hasStrip, hasThumbnail, hasBackground bool

	for i := range p.Images {
		img := &p.Images[i]
		role := img.EffectiveRole()

		if _, ok := allowed[role]; known && !ok {
			messages = append(messages,
				fmt.Sprintf("image role %q is not allowed for %s passes", role, string(p.Type)))
		}

		if !strings.EqualFold(img.Extension, pngExtension) {
			messages = append(messages,
				fmt.Sprintf("image %s must be a PNG file", img.FileName()))
		}

		switch role {
		case roleIcon:
			hasIcon = true
		case roleStrip:
			hasStrip = true
		case roleThumbnail:
			hasThumbnail = true
		case roleBackground:
			hasBackground = true
		}
	}

	if !hasIcon {
		messages = append(messages, "pass must have an icon image.")
	}

	// A strip image occupies the space thumbnails and backgrounds would use.
	if p.Type == TypeEventTicket && hasStrip && (hasThumbnail || hasBackground) {
		messages = append(messages,
			"event ticket passes cannot have a thumbnail or background image together with a strip image.")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}
