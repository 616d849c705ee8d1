package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
)

func TestCustomSQL(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []string{"select * from orders"}, CustomSQL(doc))
}

func TestFileConnectionsPreserveCase(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []string{"C:/Data/Budget.xlsx"}, FileConnections(doc))
}

func TestCloudConnections(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []string{"C:/Data/Budget.xlsx"}, CloudConnections(doc, DefaultCloudProvider))
	assert.Empty(t, CloudConnections(doc, "dropbox"))
}

func TestDBConnections(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []models.DBConnection{{Name: "sales", Class: "postgres"}}, DBConnections(doc))
}

func TestFonts(t *testing.T) {
	doc := loadSample(t)
	// One explicit format override, one run-level override.
	assert.Equal(t, []string{"arial", "tableau book"}, Fonts(doc))
}

func TestColors(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []models.StyleColor{
		{Sheet: "Sheet 1", Element: "axis", Color: "#555555"},
		{Sheet: "Sheet 1", Element: "label", Color: "#e6a04c"},
		{Sheet: "Sheet 2", Element: models.TooltipElement, Color: "#ff0000"},
	}, Colors(doc))
}

func TestColorPalettes(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []string{"tableau10_10"}, ColorPalettes(doc))
}

func TestImages(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []string{"c:/images/logo.png"}, Images(doc))
}

func TestShapes(t *testing.T) {
	doc := loadSample(t)
	assert.Equal(t, []string{"arrows/arrow_up.png"}, Shapes(doc))
}

func TestExtractorsEmptyWorkbook(t *testing.T) {
	doc := loadEmpty(t)

	assert.Empty(t, CustomSQL(doc))
	assert.Empty(t, FileConnections(doc))
	assert.Empty(t, CloudConnections(doc, DefaultCloudProvider))
	assert.Empty(t, DBConnections(doc))
	assert.Empty(t, Fonts(doc))
	assert.Empty(t, Colors(doc))
	assert.Empty(t, ColorPalettes(doc))
	assert.Empty(t, Images(doc))
	assert.Empty(t, Shapes(doc))
	assert.Empty(t, DeclaredFields(doc))
	assert.Empty(t, HiddenFields(doc))

	active, err := ActiveFields(doc, false)
	assert.NoError(t, err)
	assert.Empty(t, active)
}
