package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Rick03098/recruitment-matcher/internal/normalize"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// resumeSchema is the JSON Schema the model response must satisfy before we
// trust it. Field shapes stay loose: skills may come back as an array or a
// comma-joined string, and every field is optional.
const resumeSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "title": {"type": "string"},
    "skills": {
      "anyOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}}
      ]
    },
    "experience_years": {"type": "string"},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "title": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "education": {"type": "string"},
    "education_detail": {
      "type": "object",
      "properties": {
        "school": {"type": "string"},
        "major": {"type": "string"},
        "degree": {"type": "string"}
      }
    },
    "contact": {"type": "string"},
    "contact_detail": {
      "type": "object",
      "properties": {
        "phone": {"type": "string"},
        "email": {"type": "string"}
      }
    }
  }
}`

// resumePrompt instructs the model to pull structured candidate fields out of
// raw résumé text.
const resumePrompt = `你是一个简历信息提取助手。请从下面的简历文本中提取结构化信息。

只返回符合以下结构的 JSON 对象，不要返回 markdown、解释或代码块：
{
  "name": string,             // 候选人姓名
  "title": string,            // 当前或目标职位
  "skills": []string,         // 技能关键词列表
  "experience_years": string, // 工作年限描述，如 "5年"
  "experience": [{"company": string, "title": string, "start_date": string, "end_date": string, "description": string}],
  "education": string,        // 最高学历描述
  "education_detail": {"school": string, "major": string, "degree": string},
  "contact": string,          // 联系方式描述
  "contact_detail": {"phone": string, "email": string}
}

要求：
- 只提取文本中明确出现的信息，不要编造或总结。
- 找不到的字段直接省略。

简历文本：
`

// Extractor is the structured-extraction collaborator. It is optional by
// contract: every failure surfaces as *ServiceError and callers fall back to
// heuristic extraction.
type Extractor struct {
	client Client
}

// NewExtractor wraps a model client in the extraction contract.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractResume asks the model for a structured candidate record. The input
// is bounded before the call, and the response is schema-checked before
// unmarshaling so a malformed reply never becomes a half-filled record.
func (e *Extractor) ExtractResume(ctx context.Context, text string) (*types.ExtractedResume, error) {
	bounded := normalize.ForExtraction(text)

	raw, err := e.client.GenerateJSON(ctx, resumePrompt+bounded, TierStandard)
	if err != nil {
		return nil, err
	}

	if err := validateResponse(raw); err != nil {
		return nil, err
	}

	var extracted types.ExtractedResume
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		return nil, &ServiceError{Message: "malformed extraction response", Cause: err}
	}
	return &extracted, nil
}

// validateResponse checks the raw model reply against the résumé schema.
func validateResponse(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return &ServiceError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &ServiceError{Message: "response violates schema: " + strings.Join(descriptions, "; ")}
	}
	return nil
}
