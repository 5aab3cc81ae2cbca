package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	result := Normalize("")
	assert.False(t, result.Usable)
	assert.Equal(t, "", result.Text)
}

func TestNormalize_WhitespaceOnly(t *testing.T) {
	result := Normalize("   \n\t  ")
	assert.False(t, result.Usable)
	assert.Equal(t, "", result.Text)
}

func TestNormalize_ShortText(t *testing.T) {
	result := Normalize("张三，前端工程师")
	assert.False(t, result.Usable)
	assert.Equal(t, "张三，前端工程师", result.Text)
}

func TestNormalize_BoundaryLength(t *testing.T) {
	// Exactly 50 runes after trimming is usable; 49 is not.
	assert.True(t, Normalize(strings.Repeat("长", 50)).Usable)
	assert.False(t, Normalize(strings.Repeat("长", 49)).Usable)
	assert.True(t, Normalize("  "+strings.Repeat("长", 50)+"  ").Usable)
}

func TestNormalize_TrimsSurroundingWhitespace(t *testing.T) {
	result := Normalize("  hello world  ")
	assert.Equal(t, "hello world", result.Text)
}

func TestForExtraction_ShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "短文本", ForExtraction("短文本"))
}

func TestForExtraction_HardPrefixCut(t *testing.T) {
	long := strings.Repeat("字", MaxExtractionLength+100)
	bounded := ForExtraction(long)
	assert.Equal(t, MaxExtractionLength, len([]rune(bounded)))
	assert.Equal(t, strings.Repeat("字", MaxExtractionLength), bounded)
}

func TestForClassification_HardPrefixCut(t *testing.T) {
	long := strings.Repeat("a", MaxClassificationLength*2)
	assert.Equal(t, MaxClassificationLength, len(ForClassification(long)))
}
