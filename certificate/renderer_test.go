package certificate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() CertificateData {
	return CertificateData{
		RecipientName:    "Jane Doe",
		ClubName:         "TSF Alpha Club",
		LevelNumber:      2,
		LevelTitle:       "Intermediate",
		LevelDescription: "Developing speaking skills",
		IssueDate:        time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	pdfBytes, err := Render(sampleData())
	require.NoError(t, err)

	require.Greater(t, len(pdfBytes), 1000)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderIsDeterministicForFixedDate(t *testing.T) {
	// Repeated renders exercise the library's internal map ordering; a single
	// pass can agree by luck
	hashes := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pdfBytes, err := Render(sampleData())
		require.NoError(t, err)
		hashes[HashBytes(pdfBytes)] = true
	}

	assert.Len(t, hashes, 1, "identical inputs must produce identical bytes")
}

func TestRenderRejectsEmptyRequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*CertificateData)
	}{
		{"recipient_name", func(d *CertificateData) { d.RecipientName = "" }},
		{"club_name", func(d *CertificateData) { d.ClubName = "   " }},
		{"level_title", func(d *CertificateData) { d.LevelTitle = "" }},
		{"level_description", func(d *CertificateData) { d.LevelDescription = "\t" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			data := sampleData()
			tc.mut(&data)

			pdfBytes, err := Render(data)
			require.Error(t, err)
			assert.Nil(t, pdfBytes)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestRenderWrapsLongDescription(t *testing.T) {
	data := sampleData()
	data.LevelDescription = "Developing advanced public speaking skills including impromptu delivery, vocal variety, structured argumentation and confident stage presence in front of larger audiences"

	pdfBytes, err := Render(data)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
