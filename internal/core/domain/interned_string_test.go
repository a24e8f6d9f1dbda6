package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockdiff/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("serde")
	b := domain.NewInternedString("serde")
	assert.Equal(t, a, b)
	assert.Equal(t, "serde", a.String())
	assert.False(t, a.IsZero())

	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
}

func TestInternedString_TextRoundTrip(t *testing.T) {
	a := domain.NewInternedString("tokio")
	text, err := a.MarshalText()
	require.NoError(t, err)

	var b domain.InternedString
	require.NoError(t, b.UnmarshalText(text))
	assert.Equal(t, a, b)
}

func TestNodeID_ChecksumWinsOverLabel(t *testing.T) {
	withSum := domain.PackageRecord{
		Name:     domain.NewInternedString("foo"),
		Version:  domain.NewInternedString("1.0.0"),
		Checksum: "abc123",
	}
	withoutSum := domain.PackageRecord{
		Name:    domain.NewInternedString("foo"),
		Version: domain.NewInternedString("1.0.0"),
	}

	assert.Equal(t, "abc123", withSum.NodeID().String())
	assert.Equal(t, "foo@1.0.0", withoutSum.NodeID().String())
	assert.Equal(t, "foo@1.0.0", withSum.Label())
}
