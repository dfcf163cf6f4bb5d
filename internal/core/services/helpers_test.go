package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

func thalamicAliases(t *testing.T) *domain.AliasTable {
	t.Helper()
	table, err := domain.NewAliasTable("thalamic-nuclei-2024.1",
		domain.AliasRule{From: "Left-L-Sg", To: "Left-LSg"},
		domain.AliasRule{From: "Left-MDl", To: "Left-MDI"},
		domain.AliasRule{From: "Left-VLp", To: "Left-VLP"},
		domain.AliasRule{From: "Left-VM", To: "Left-VMP"},
	)
	require.NoError(t, err)
	return table
}

func openTestdata(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("../../../testdata/" + name)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}
