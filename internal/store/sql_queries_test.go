package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildListRecipesQuery_NoFilters(t *testing.T) {
	query, args, err := buildListRecipesQuery(42, RecipeFilter{})
	require.NoError(t, err)

	require.Contains(t, query, "FROM recipes")
	require.Contains(t, query, "user_id = $1")
	require.Contains(t, query, "ORDER BY recipe_id DESC")
	require.NotContains(t, query, "EXISTS")
	require.Equal(t, []any{int64(42)}, args)
}

func TestBuildListRecipesQuery_TagFilter(t *testing.T) {
	query, args, err := buildListRecipesQuery(42, RecipeFilter{TagName: "Vegan"})
	require.NoError(t, err)

	require.Contains(t, query, "recipe_tags")
	require.Contains(t, query, "t.name ILIKE $2")
	require.NotContains(t, query, "recipe_ingredients")
	require.Equal(t, []any{int64(42), "%Vegan%"}, args)
}

func TestBuildListRecipesQuery_IngredientFilter(t *testing.T) {
	query, args, err := buildListRecipesQuery(42, RecipeFilter{IngredientName: "chicken"})
	require.NoError(t, err)

	require.Contains(t, query, "recipe_ingredients")
	require.Contains(t, query, "i.name ILIKE $2")
	require.NotContains(t, query, "recipe_tags")
	require.Equal(t, []any{int64(42), "%chicken%"}, args)
}

func TestBuildListRecipesQuery_EscapesLikeMetacharacters(t *testing.T) {
	// "%" and "_" in a filter value must match literally, not as wildcards
	query, args, err := buildListRecipesQuery(42, RecipeFilter{TagName: `100%_\done`})
	require.NoError(t, err)

	require.Contains(t, query, "t.name ILIKE $2")
	require.Equal(t, []any{int64(42), `%100\%\_\\done%`}, args)
}

func TestBuildListRecipesQuery_BothFilters(t *testing.T) {
	query, args, err := buildListRecipesQuery(7, RecipeFilter{TagName: "dinner", IngredientName: "rice"})
	require.NoError(t, err)

	require.Contains(t, query, "t.name ILIKE $2")
	require.Contains(t, query, "i.name ILIKE $3")
	require.Equal(t, []any{int64(7), "%dinner%", "%rice%"}, args)
}
