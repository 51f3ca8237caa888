package store

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, is_active, is_staff, is_superuser, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, is_active, is_staff, is_superuser, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, is_active, is_staff, is_superuser, created_at
    FROM users
    WHERE user_id = $1;`

	updateUser = `UPDATE users
    SET name = $1, password_hash = $2
    WHERE user_id = $3
    RETURNING user_id, email, name, password_hash, is_active, is_staff, is_superuser, created_at;`

	createRecipe = `INSERT INTO recipes (user_id, title, time_minutes, price, description, link)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING recipe_id, user_id, title, time_minutes, price, description, link, created_at;`

	getRecipe = `SELECT recipe_id, user_id, title, time_minutes, price, description, link, created_at
    FROM recipes
    WHERE recipe_id = $1 AND user_id = $2;`

	updateRecipe = `UPDATE recipes
    SET title = $1, time_minutes = $2, price = $3, description = $4, link = $5
    WHERE recipe_id = $6 AND user_id = $7
    RETURNING recipe_id, user_id, title, time_minutes, price, description, link, created_at;`

	deleteRecipe = `DELETE FROM recipes
    WHERE recipe_id = $1 AND user_id = $2;`

	getRecipeTags = `SELECT t.tag_id, t.user_id, t.name
    FROM tags t
    JOIN recipe_tags rt ON rt.tag_id = t.tag_id
    WHERE rt.recipe_id = $1
    ORDER BY t.name;`

	getRecipeIngredients = `SELECT i.ingredient_id, i.user_id, i.name
    FROM ingredients i
    JOIN recipe_ingredients ri ON ri.ingredient_id = i.ingredient_id
    WHERE ri.recipe_id = $1
    ORDER BY i.name;`

	checkRecipeOwned = `SELECT recipe_id FROM recipes
    WHERE recipe_id = $1 AND user_id = $2;`

	detachAllRecipeTags = `DELETE FROM recipe_tags
    WHERE recipe_id = $1;`

	attachRecipeTag = `INSERT INTO recipe_tags (recipe_id, tag_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	detachAllRecipeIngredients = `DELETE FROM recipe_ingredients
    WHERE recipe_id = $1;`

	attachRecipeIngredient = `INSERT INTO recipe_ingredients (recipe_id, ingredient_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	listTags = `SELECT tag_id, user_id, name
    FROM tags
    WHERE user_id = $1
    ORDER BY name;`

	// The conditional insert races cleanly with concurrent identical calls:
	// the losing writer gets no row back and falls through to findTagByName.
	insertTagIfAbsent = `INSERT INTO tags (user_id, name)
    VALUES ($1, $2)
    ON CONFLICT (user_id, name) DO NOTHING
    RETURNING tag_id, user_id, name;`

	findTagByName = `SELECT tag_id, user_id, name
    FROM tags
    WHERE user_id = $1 AND name = $2;`

	updateTag = `UPDATE tags
    SET name = $1
    WHERE tag_id = $2 AND user_id = $3
    RETURNING tag_id, user_id, name;`

	deleteTag = `DELETE FROM tags
    WHERE tag_id = $1 AND user_id = $2;`

	listIngredients = `SELECT ingredient_id, user_id, name
    FROM ingredients
    WHERE user_id = $1
    ORDER BY name;`

	insertIngredientIfAbsent = `INSERT INTO ingredients (user_id, name)
    VALUES ($1, $2)
    ON CONFLICT (user_id, name) DO NOTHING
    RETURNING ingredient_id, user_id, name;`

	findIngredientByName = `SELECT ingredient_id, user_id, name
    FROM ingredients
    WHERE user_id = $1 AND name = $2;`

	updateIngredient = `UPDATE ingredients
    SET name = $1
    WHERE ingredient_id = $2 AND user_id = $3
    RETURNING ingredient_id, user_id, name;`

	deleteIngredient = `DELETE FROM ingredients
    WHERE ingredient_id = $1 AND user_id = $2;`
)

// buildListRecipesQuery assembles the owner-scoped recipe listing query with
// the optional tag/ingredient name filters applied as EXISTS subqueries.
// Filter matching is a case-insensitive substring search (ILIKE).
func buildListRecipesQuery(userID int64, filter RecipeFilter) (string, []any, error) {
	builder := squirrel.
		Select("recipe_id", "user_id", "title", "time_minutes", "price", "description", "link", "created_at").
		From("recipes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("recipe_id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.TagName != "" {
		builder = builder.Where(
			`EXISTS (SELECT 1 FROM recipe_tags rt
                JOIN tags t ON t.tag_id = rt.tag_id
                WHERE rt.recipe_id = recipes.recipe_id AND t.name ILIKE ?)`,
			substringPattern(filter.TagName),
		)
	}

	if filter.IngredientName != "" {
		builder = builder.Where(
			`EXISTS (SELECT 1 FROM recipe_ingredients ri
                JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
                WHERE ri.recipe_id = recipes.recipe_id AND i.name ILIKE ?)`,
			substringPattern(filter.IngredientName),
		)
	}

	return builder.ToSql()
}

var likeMetacharEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// substringPattern wraps s in %...% for a substring ILIKE match. LIKE
// metacharacters in s are escaped so they match literally: a filter of
// "100%" must not act as a wildcard.
func substringPattern(s string) string {
	return "%" + likeMetacharEscaper.Replace(s) + "%"
}
