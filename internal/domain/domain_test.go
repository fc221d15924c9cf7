package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"approved", StatusApproved, false},
		{"rejected", StatusRejected, false},
		{"", "", true},
		{"Approved", "", true},
		{"deleted", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"arte", "barrio"}, SplitTags(" arte , barrio ,, "))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , "))
}

func TestNormalizeTags_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, []string{"cultura libre", "radio"}, NormalizeTags("cultura   libre, radio"))
}

func TestNormalizeLinks(t *testing.T) {
	in := "https://a.example\n\n  https://b.example  \n"
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, NormalizeLinks(in))
}

func TestEntryTypeValid(t *testing.T) {
	for _, typ := range []EntryType{EntryUpdate, EntryHito, EntryEvento, EntryPrensa, EntryFinanzas, EntryContenido, EntryAliados} {
		assert.True(t, typ.Valid(), string(typ))
	}
	assert.False(t, EntryType("noticia").Valid())
}
