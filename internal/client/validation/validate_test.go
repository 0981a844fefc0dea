package validation

import (
	"testing"

	"github.com/cghdev/userdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name       string
		draft      models.Draft
		wantFields []string
	}{
		{
			name:       "all missing",
			draft:      models.Draft{},
			wantFields: []string{FieldName, FieldEmail, FieldPhone},
		},
		{
			name:       "whitespace only counts as missing",
			draft:      models.Draft{Name: "  ", Email: "\t", PhoneNumber: " "},
			wantFields: []string{FieldName, FieldEmail, FieldPhone},
		},
		{
			name:       "missing name only",
			draft:      models.Draft{Email: "a@x.com", PhoneNumber: "555"},
			wantFields: []string{FieldName},
		},
		{
			name:       "missing email only",
			draft:      models.Draft{Name: "Ana", PhoneNumber: "555"},
			wantFields: []string{FieldEmail},
		},
		{
			name:       "missing phone only",
			draft:      models.Draft{Name: "Ana", Email: "a@x.com"},
			wantFields: []string{FieldPhone},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(tc.draft, nil, nil)
			require.Len(t, errs, len(tc.wantFields))
			for _, f := range tc.wantFields {
				assert.NotEmpty(t, errs[f])
			}
		})
	}
}

func TestValidate_Valid(t *testing.T) {
	d := models.Draft{Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0001"}
	errs := Validate(d, []string{"b@x.com"}, []string{"5550002"})
	assert.True(t, errs.Valid())
}

func TestValidate_DuplicateEmailCaseInsensitive(t *testing.T) {
	d := models.Draft{Name: "Bob", Email: "A@X.com", PhoneNumber: "555-9999"}
	errs := Validate(d, []string{"a@x.com"}, nil)
	require.False(t, errs.Valid())
	assert.Equal(t, MsgEmailTaken, errs[FieldEmail])
}

func TestValidate_DuplicatePhoneIgnoresFormatting(t *testing.T) {
	tests := []struct {
		draft string
		taken string
	}{
		{"55-1234", "551234"},
		{"551234", "55-1234"},
		{"(55) 12 34", "55.12.34"},
	}
	for _, tc := range tests {
		d := models.Draft{Name: "Bob", Email: "b@x.com", PhoneNumber: tc.draft}
		errs := Validate(d, nil, []string{tc.taken})
		require.False(t, errs.Valid(), "draft %q vs taken %q", tc.draft, tc.taken)
		assert.Equal(t, MsgPhoneTaken, errs[FieldPhone])
	}
}

// The scenario from the table: "Ana" holds a@x.com / 555-0001 and a new
// draft collides on both fields through normalization.
func TestValidate_DoubleCollision(t *testing.T) {
	d := models.Draft{Name: "Bob", Email: "A@X.com", PhoneNumber: "5550001"}
	errs := Validate(d, []string{"a@x.com"}, []string{"555-0001"})
	require.Len(t, errs, 2)
	assert.Equal(t, MsgEmailTaken, errs[FieldEmail])
	assert.Equal(t, MsgPhoneTaken, errs[FieldPhone])
}

// Editing a record and resubmitting its own values must not collide as long
// as the caller excluded them from the taken sets.
func TestValidate_SelfExclusion(t *testing.T) {
	d := models.Draft{ID: 1, Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0001"}
	errs := Validate(d, []string{"other@x.com"}, []string{"5550002"})
	assert.True(t, errs.Valid())
}

func TestValidate_RequiredBeatsUniqueness(t *testing.T) {
	// An empty email reports only the required error even if "" is taken.
	d := models.Draft{Name: "Ana", Email: "", PhoneNumber: "555"}
	errs := Validate(d, []string{""}, nil)
	assert.Equal(t, MsgEmailRequired, errs[FieldEmail])
}
