package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"dropout-risk-api/internal/domain/expert"
)

// KnowledgeRepo 提供 Postgres 版的規則與事實定義存取，
// 與檔案版共用同一個 repository 接口。
type KnowledgeRepo struct {
	db *sql.DB
}

// NewKnowledgeRepo 建立 KnowledgeRepo。
func NewKnowledgeRepo(db *sql.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

// Rules 依 priority 順序讀取規則，數值小者優先比對。
func (r *KnowledgeRepo) Rules(ctx context.Context) ([]expert.Rule, error) {
	const q = `
SELECT conditions, prediction, actions
FROM expert_rules
ORDER BY priority ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	var rules []expert.Rule
	for rows.Next() {
		var conditionsRaw, actionsRaw []byte
		var rule expert.Rule
		if err := rows.Scan(&conditionsRaw, &rule.Prediction, &actionsRaw); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		if err := json.Unmarshal(conditionsRaw, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("parse rule conditions: %w", err)
		}
		if len(actionsRaw) > 0 {
			if err := json.Unmarshal(actionsRaw, &rule.Actions); err != nil {
				return nil, fmt.Errorf("parse rule actions: %w", err)
			}
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rules: %w", err)
	}
	return rules, nil
}

// FactDefinitions 依 position 讀取事實定義，資料列順序即呈現順序。
func (r *KnowledgeRepo) FactDefinitions(ctx context.Context) (expert.FactList, error) {
	const q = `
SELECT name, value
FROM expert_facts
ORDER BY position ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query fact definitions: %w", err)
	}
	defer rows.Close()

	defs := expert.FactList{}
	for rows.Next() {
		var name string
		var valueRaw []byte
		if err := rows.Scan(&name, &valueRaw); err != nil {
			return nil, fmt.Errorf("scan fact definition: %w", err)
		}
		var value any
		if len(valueRaw) > 0 {
			if err := json.Unmarshal(valueRaw, &value); err != nil {
				return nil, fmt.Errorf("parse fact value: %w", err)
			}
		}
		defs = append(defs, expert.FactEntry{Name: name, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fact definitions: %w", err)
	}
	return defs, nil
}
