package pass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// icon returns a minimal valid icon image for test passes.
func icon() Image {
	return Image{Role: "icon", Scale: 1, Extension: "png", SourcePath: "testdata/icon.png"}
}

// TestValidateMissingIcon ensures every variant rejects a pass without an icon.
func TestValidateMissingIcon(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{TypeBoardingPass, TypeCoupon, TypeEventTicket, TypeGeneric, TypeStoreCard} {
		p := &Pass{
			Type: typ,
			Images: []Image{
				{Role: "logo", Scale: 1, Extension: "png", SourcePath: "logo.png"},
			},
		}

		err := p.Validate()
		require.Error(t, err, "type %s", typ)

		var validationErr *ValidationError

		require.ErrorAs(t, err, &validationErr)
		require.Contains(t, validationErr.Messages, "pass must have an icon image.")
	}
}

// TestValidateIconScaleVariants ensures 2x/3x icon files satisfy the icon rule.
func TestValidateIconScaleVariants(t *testing.T) {
	t.Parallel()

	p := &Pass{
		Type: TypeGeneric,
		Images: []Image{
			{Role: "icon", Name: "icon@2x", Scale: 2, Extension: "png", SourcePath: "icon@2x.png"},
		},
	}

	require.NoError(t, p.Validate())
}

// TestValidateDisallowedRole ensures roles outside the variant allow-list are reported.
func TestValidateDisallowedRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		typ  Type
		role string
	}{
		{name: "generic strip", typ: TypeGeneric, role: "strip"},
		{name: "boarding pass background", typ: TypeBoardingPass, role: "background"},
		{name: "store card footer", typ: TypeStoreCard, role: "footer"},
		{name: "coupon thumbnail", typ: TypeCoupon, role: "thumbnail"},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := &Pass{
				Type: tc.typ,
				Images: []Image{
					icon(),
					{Role: tc.role, Scale: 1, Extension: "png", SourcePath: tc.role + ".png"},
				},
			}

			err := p.Validate()
			require.Error(t, err)

			var validationErr *ValidationError

			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Messages, 1)
			require.Contains(t, validationErr.Messages[0], tc.role)
		})
	}
}

// TestValidateExtension ensures only case-insensitive "png" passes.
func TestValidateExtension(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"png": true,
		"PNG": true,
		"Png": true,
		"jpg": false,
		"JPG": false,
		"gif": false,
	}

	for ext, ok := range cases {
		p := &Pass{
			Type: TypeGeneric,
			Images: []Image{
				{Role: "icon", Scale: 1, Extension: ext, SourcePath: "icon." + ext},
			},
		}

		err := p.Validate()
		if ok {
			require.NoError(t, err, "extension %s", ext)
			continue
		}

		var validationErr *ValidationError

		require.ErrorAs(t, err, &validationErr)
		// The offending file is named in the message.
		require.Contains(t, validationErr.Messages[0], "icon."+ext)
	}
}

// TestValidateEventTicketStripExclusivity checks the strip vs thumbnail/background rule.
func TestValidateEventTicketStripExclusivity(t *testing.T) {
	t.Parallel()

	for _, role := range []string{"background", "thumbnail"} {
		p := &Pass{
			Type: TypeEventTicket,
			Images: []Image{
				icon(),
				{Role: "strip", Scale: 1, Extension: "png", SourcePath: "strip.png"},
				{Role: role, Scale: 1, Extension: "png", SourcePath: role + ".png"},
			},
		}

		err := p.Validate()
		require.Error(t, err)

		var validationErr *ValidationError

		require.ErrorAs(t, err, &validationErr)
		// A single combined violation, not one per image.
		require.Len(t, validationErr.Messages, 1)
		require.Contains(t, validationErr.Messages[0], "strip")
	}

	// Strip alone is fine.
	p := &Pass{
		Type: TypeEventTicket,
		Images: []Image{
			icon(),
			{Role: "strip", Scale: 1, Extension: "png", SourcePath: "strip.png"},
		},
	}

	require.NoError(t, p.Validate())
}

// TestValidateCollectsAllViolations ensures validation is collect-all, not fail-fast.
func TestValidateCollectsAllViolations(t *testing.T) {
	t.Parallel()

	p := &Pass{
		Type: TypeGeneric,
		Images: []Image{
			{Role: "strip", Scale: 1, Extension: "jpg", SourcePath: "strip.jpg"},
		},
	}

	err := p.Validate()

	var validationErr *ValidationError

	require.ErrorAs(t, err, &validationErr)
	// Disallowed role, wrong extension and missing icon all reported together.
	require.Len(t, validationErr.Messages, 3)
}

// TestValidateUnknownType ensures an unrecognized variant tag is rejected.
func TestValidateUnknownType(t *testing.T) {
	t.Parallel()

	p := &Pass{
		Type:   Type("giftCard"),
		Images: []Image{icon()},
	}

	err := p.Validate()

	var validationErr *ValidationError

	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Messages[0], "giftCard")
}
