package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalArray(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`["JavaScript", " React ", "HTML"]`), &list))
	assert.Equal(t, StringList{"JavaScript", "React", "HTML"}, list)
}

func TestStringList_UnmarshalCommaJoinedString(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`"JavaScript, React, HTML"`), &list))
	assert.Equal(t, StringList{"JavaScript", "React", "HTML"}, list)
}

func TestStringList_UnmarshalChineseDelimiters(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`"Python、机器学习，数据分析"`), &list))
	assert.Equal(t, StringList{"Python", "机器学习", "数据分析"}, list)
}

func TestStringList_UnmarshalRejectsNumbers(t *testing.T) {
	var list StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestSplitList_EmptyString(t *testing.T) {
	result := SplitList("   ")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSplitList_DropsEmptyElements(t *testing.T) {
	assert.Equal(t, []string{"Go", "Rust"}, SplitList("Go, , Rust,"))
}
