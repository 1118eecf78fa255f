package model_test

import (
	"testing"
	"time"

	"dbc/backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestIsValidTemplate(t *testing.T) {
	require.True(t, model.IsValidTemplate("card"))
	require.True(t, model.IsValidTemplate("website"))
	require.False(t, model.IsValidTemplate(""))
	require.False(t, model.IsValidTemplate("Card"))
	require.False(t, model.IsValidTemplate("blog"))
}

func TestSiteDomain_TXTVerified(t *testing.T) {
	d := &model.SiteDomain{}
	require.False(t, d.TXTVerified())

	now := time.Now()
	d.TXTVerifiedAt = &now
	require.True(t, d.TXTVerified())
}
