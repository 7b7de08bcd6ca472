package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dropout-risk-api/internal/domain/expert"
)

// KnowledgeRepo 以靜態 JSON 檔提供規則與事實定義。每次請求重新讀檔，
// 知識庫在執行期不會變動，因此不需要快取或鎖。
type KnowledgeRepo struct {
	rulesPath string
	factsPath string
}

// NewKnowledgeRepo 建立檔案版知識庫。
func NewKnowledgeRepo(rulesPath, factsPath string) *KnowledgeRepo {
	return &KnowledgeRepo{rulesPath: rulesPath, factsPath: factsPath}
}

type rulesDocument struct {
	Rules []expert.Rule `json:"rules"`
}

// Rules 讀取規則清單，檔案順序即優先序。
func (r *KnowledgeRepo) Rules(_ context.Context) ([]expert.Rule, error) {
	data, err := os.ReadFile(r.rulesPath)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var doc rulesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return doc.Rules, nil
}

// FactDefinitions 讀取事實定義，保留檔案中的鍵順序。
func (r *KnowledgeRepo) FactDefinitions(_ context.Context) (expert.FactList, error) {
	data, err := os.ReadFile(r.factsPath)
	if err != nil {
		return nil, fmt.Errorf("read facts file: %w", err)
	}
	var defs expert.FactList
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse facts file: %w", err)
	}
	return defs, nil
}
