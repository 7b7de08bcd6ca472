package expert

import (
	"context"
	"errors"
	"fmt"

	"dropout-risk-api/internal/domain/expert"
)

// KnowledgeRepository 提供規則與事實定義的讀取接口。
type KnowledgeRepository interface {
	Rules(ctx context.Context) ([]expert.Rule, error)
	FactDefinitions(ctx context.Context) (expert.FactList, error)
}

// ErrInsufficientFacts is the precondition failure surfaced when a caller
// supplies fewer non-null facts than required.
var ErrInsufficientFacts = errors.New("at least 3 facts are required")

// AssessUseCase 依據事實比對規則並產生風險評估。
type AssessUseCase struct {
	knowledge KnowledgeRepository
	minFacts  int
}

// NewAssessUseCase 建立風險評估用例。
func NewAssessUseCase(knowledge KnowledgeRepository, minFacts int) *AssessUseCase {
	if minFacts <= 0 {
		minFacts = 3
	}
	return &AssessUseCase{knowledge: knowledge, minFacts: minFacts}
}

// MinFacts 回傳最低事實數需求。
func (uc *AssessUseCase) MinFacts() int {
	return uc.minFacts
}

// Execute runs the matching pipeline: precondition check, rule scan, then
// formatting. A no-match outcome yields the default assessment, never an
// error; only an unavailable rule base fails.
func (uc *AssessUseCase) Execute(ctx context.Context, facts expert.Facts) (expert.Assessment, error) {
	if expert.CountProvided(facts) < uc.minFacts {
		return expert.Assessment{}, ErrInsufficientFacts
	}

	rules, err := uc.knowledge.Rules(ctx)
	if err != nil {
		return expert.Assessment{}, fmt.Errorf("load rules: %w", err)
	}

	matched := expert.Match(facts, rules)
	if matched == nil {
		return expert.DefaultAssessment(), nil
	}

	prediction := matched.Prediction
	if prediction == "" {
		prediction = expert.DefaultPrediction
	}
	return expert.FormatPrediction(prediction, matched.Actions), nil
}

// ListFactsUseCase 讀取事實定義並轉成對外命名格式。
type ListFactsUseCase struct {
	knowledge KnowledgeRepository
}

// NewListFactsUseCase 建立事實清單用例。
func NewListFactsUseCase(knowledge KnowledgeRepository) *ListFactsUseCase {
	return &ListFactsUseCase{knowledge: knowledge}
}

// Execute returns the fact definitions with external-form names, preserving
// the source order end to end.
func (uc *ListFactsUseCase) Execute(ctx context.Context) (expert.FactList, error) {
	defs, err := uc.knowledge.FactDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fact definitions: %w", err)
	}
	return defs.ToExternal(), nil
}

// ListRulesUseCase 讀取完整規則清單，供管理端檢視。
type ListRulesUseCase struct {
	knowledge KnowledgeRepository
}

// NewListRulesUseCase 建立規則清單用例。
func NewListRulesUseCase(knowledge KnowledgeRepository) *ListRulesUseCase {
	return &ListRulesUseCase{knowledge: knowledge}
}

// Execute 回傳優先序排列的規則清單。
func (uc *ListRulesUseCase) Execute(ctx context.Context) ([]expert.Rule, error) {
	rules, err := uc.knowledge.Rules(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return rules, nil
}
