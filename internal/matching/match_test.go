package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rick03098/recruitment-matcher/internal/types"
)

func candidate(name string, skills ...string) types.CandidateRecord {
	return types.CandidateRecord{Name: name, Skills: skills}
}

func TestMatch_EmptyJobDescription(t *testing.T) {
	_, err := Match("   \n ", []types.CandidateRecord{candidate("张三", "React")})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestMatch_EmptyCandidatePool(t *testing.T) {
	_, err := Match("招聘React开发", nil)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestMatch_ReactPythonScenario(t *testing.T) {
	jd := "We need a React and Python developer with 3 years experience"
	outcome, err := Match(jd, []types.CandidateRecord{candidate("张三", "React", "Vue")})
	require.NoError(t, err)

	// JD keywords come out in vocabulary scan order, not text order.
	assert.Equal(t, []string{"Python", "React"}, outcome.JobRequirements.Skills)

	result := outcome.Matches[0]
	assert.Equal(t, []string{"React"}, result.MatchedSkills)
	assert.Equal(t, []string{"Vue"}, result.MissingSkills)
	assert.Equal(t, 50, result.MatchScore)
}

func TestMatch_BidirectionalSubstring(t *testing.T) {
	// Candidate skill "React Native" contains JD keyword "React"; candidate
	// skill "SQL" is contained by JD keyword "MySQL".
	outcome, err := Match("需要 React 和 MySQL", []types.CandidateRecord{
		candidate("张三", "React Native", "SQL"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"React Native", "SQL"}, outcome.Matches[0].MatchedSkills)
}

func TestMatch_SentinelWhenNoJDKeywords(t *testing.T) {
	outcome, err := Match("这份职位描述不包含任何已知技术词汇表中的术语内容", []types.CandidateRecord{
		candidate("张三", "React", "Python"),
		candidate("李四", "Vue"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"技能"}, outcome.JobRequirements.Skills)
	for _, match := range outcome.Matches {
		assert.Equal(t, 0, match.MatchScore)
		assert.Empty(t, match.MatchedSkills)
	}
}

func TestMatch_ScoreBounds(t *testing.T) {
	// Many candidate skills can match one JD keyword; the score is clamped.
	outcome, err := Match("需要 SQL", []types.CandidateRecord{
		candidate("张三", "MySQL", "PostgreSQL", "SQL"),
	})
	require.NoError(t, err)

	assert.Equal(t, 100, outcome.Matches[0].MatchScore)
}

func TestMatch_SortedDescendingStableTies(t *testing.T) {
	outcome, err := Match("需要 React 和 Python", []types.CandidateRecord{
		candidate("低分", "Figma"),
		candidate("并列一", "React"),
		candidate("并列二", "Python"),
		candidate("高分", "React", "Python"),
	})
	require.NoError(t, err)

	names := make([]string, 0, len(outcome.Matches))
	for _, m := range outcome.Matches {
		names = append(names, m.Name)
	}
	// Ties at 50 keep their relative input order.
	assert.Equal(t, []string{"高分", "并列一", "并列二", "低分"}, names)
}

func TestMatch_Idempotent(t *testing.T) {
	pool := []types.CandidateRecord{
		candidate("张三", "React", "Vue"),
		candidate("李四", "Python", "Django"),
	}
	first, err := Match("招聘 Python 和 React 开发", pool)
	require.NoError(t, err)
	second, err := Match("招聘 Python 和 React 开发", pool)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMatch_AnalysisBands(t *testing.T) {
	outcome, err := Match("需要 React 和 Python", []types.CandidateRecord{
		candidate("高匹配", "React", "Python"),
		candidate("部分匹配", "React"),
		candidate("低匹配", "Figma"),
	})
	require.NoError(t, err)

	assert.Contains(t, outcome.Matches[0].Analysis, "高度匹配")
	assert.Contains(t, outcome.Matches[0].Analysis, "React、Python")
	assert.Contains(t, outcome.Matches[1].Analysis, "部分匹配")
	assert.Contains(t, outcome.Matches[2].Analysis, "匹配度较低")
}

func TestMatch_JobTitleFromVocabulary(t *testing.T) {
	outcome, err := Match("招聘前端工程师，要求精通React", []types.CandidateRecord{candidate("张三", "React")})
	require.NoError(t, err)
	assert.Equal(t, "前端工程师", outcome.JobRequirements.JobTitle)
}

func TestExtractRequirements_DefaultTitle(t *testing.T) {
	requirements := ExtractRequirements("需要精通Python的人")
	assert.Equal(t, "开发工程师", requirements.JobTitle)
	assert.Equal(t, []string{"Python"}, requirements.Skills)
}
