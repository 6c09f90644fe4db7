package persistence

import (
	"context"
	"testing"

	"rentql/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory(memory.NewStore())

	require.NoError(t, Seed(ctx, repos.Technologies, repos.People))
	require.NoError(t, Seed(ctx, repos.Technologies, repos.People))

	technologies, err := repos.Technologies.List(ctx)
	require.NoError(t, err)
	require.Len(t, technologies, 6)
	assert.Equal(t, "Angular", technologies[0].Name)
	assert.Equal(t, TechnologyID(1), technologies[0].ID)

	people, err := repos.People.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 10)

	ronaldo, err := repos.People.FindByID(ctx, PersonID(2))
	require.NoError(t, err)
	assert.Equal(t, "Cristiano Ronaldo", ronaldo.Name)

	techs, err := repos.Technologies.FindByIDs(ctx, ronaldo.TechIDs)
	require.NoError(t, err)

	names := make([]string, 0, len(techs))
	for _, tech := range techs {
		names = append(names, tech.Name)
	}
	assert.Equal(t, []string{"React", "Vue", "Svelte", "Cuba"}, names)
}
