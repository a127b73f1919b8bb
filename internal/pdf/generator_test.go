package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/rentals/internal/model"
)

func TestGenerateAgreementDocument(t *testing.T) {
	businessType := "retail"
	space, err := model.NewProperty("commercialspace", model.Fields{ID: 3, Address: "Business Center", Area: 200, MonthlyRate: 100000, BusinessType: &businessType}, nil)
	require.NoError(t, err)
	tenant, err := model.NewTenant(1, "Zoë Müller", "zoe@example.com", "+4930123456")
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	agreement, err := model.NewAgreement(1, tenant, space, start, start.AddDate(0, 1, 0), nil)
	require.NoError(t, err)
	agreement.AddExtra("Security", 5000)
	_, err = agreement.CalculateTotal(1)
	require.NoError(t, err)

	content, err := NewGenerator().Generate(model.AgreementDocument{
		Agreement:   agreement,
		GeneratedAt: start,
	})
	require.NoError(t, err)
	assert.True(t, len(content) > 100)
	assert.Equal(t, "%PDF-", string(content[:5]))
}

func TestGenerateRequiresAgreement(t *testing.T) {
	_, err := NewGenerator().Generate(model.AgreementDocument{})
	assert.Error(t, err)
}

func TestGenerateAfterExtraAddedPastCalculation(t *testing.T) {
	rooms := 1
	apt, err := model.NewProperty("apartment", model.Fields{ID: 1, Address: "A", Area: 30, MonthlyRate: 30000, Rooms: &rooms}, nil)
	require.NoError(t, err)
	tenant, err := model.NewTenant(1, "Ivan", "ivan@example.com", "+7999")
	require.NoError(t, err)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	agreement, err := model.NewAgreement(1, tenant, apt, start, start.AddDate(0, 1, 0), nil)
	require.NoError(t, err)
	_, err = agreement.CalculateTotal(1)
	require.NoError(t, err)
	agreement.AddExtra("Parking", 50000)

	g := NewGenerator()
	g.compress = false
	content, err := g.Generate(model.AgreementDocument{Agreement: agreement, GeneratedAt: start})
	require.NoError(t, err)
	assert.True(t, bytes.Contains(content, []byte("(30000.00)")))
	assert.True(t, bytes.Contains(content, []byte("(50000.00)")))
	assert.False(t, bytes.Contains(content, []byte("-20000.00")))
}

func TestNewUTF8GeneratorRequiresFont(t *testing.T) {
	_, err := NewUTF8Generator(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.ttf")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = NewUTF8Generator(empty)
	assert.Error(t, err)
}
