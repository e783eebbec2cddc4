package utils

import "strings"

// SplitList separa um parâmetro de query por vírgulas, descartando itens vazios
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
