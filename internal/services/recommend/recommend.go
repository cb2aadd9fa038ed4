// Package recommend подбирает сари по типу фигуры, поводу и ткани по
// статической таблице.
package recommend

import (
	"errors"
	"slices"

	"github.com/apsaracreations/saree-shop/internal/models"
)

// Метки совпадения.
const (
	MatchPerfect     = "Perfect Match"
	MatchAlternative = "Great Alternative"
	MatchClassic     = "Classic Choice"
	MatchPopular     = "Popular Choice"
)

const (
	maxResults = 3
	minResults = 2
)

// ErrIncompleteSelection — не выбран тип фигуры, повод или ткань.
var ErrIncompleteSelection = errors.New("please fill in all fields to get personalized recommendations")

// Options — значения для полей формы подбора.
type Options struct {
	BodyTypes []string `json:"bodyTypes"`
	Occasions []string `json:"occasions"`
	Fabrics   []string `json:"fabrics"`
}

// Recommend возвращает от двух до трёх вариантов. Сначала точное совпадение,
// затем другие сочетания того же типа фигуры в порядке таблицы, затем
// запасные варианты, если найдено меньше двух.
func Recommend(bodyType, occasion, fabric string) ([]models.Suggestion, error) {
	if bodyType == "" || occasion == "" || fabric == "" {
		return nil, ErrIncompleteSelection
	}

	out := make([]models.Suggestion, 0, maxResults)
	for _, e := range table {
		if e.bodyType == bodyType && e.occasion == occasion && e.fabric == fabric {
			out = append(out, suggestion(e.rec, models.PriorityPrimary, MatchPerfect))
			break
		}
	}

	for _, e := range table {
		if len(out) >= maxResults {
			break
		}
		if e.bodyType != bodyType || (e.occasion == occasion && e.fabric == fabric) {
			continue
		}
		out = append(out, suggestion(e.rec, models.PrioritySecondary, MatchAlternative))
	}

	for _, fb := range fallbacks {
		if len(out) >= minResults {
			break
		}
		out = append(out, suggestion(fb.Recommendation, fb.Priority, fb.Match))
	}
	return out, nil
}

func suggestion(rec models.Recommendation, p models.Priority, match string) models.Suggestion {
	rec.Features = slices.Clone(rec.Features)
	return models.Suggestion{Recommendation: rec, Priority: p, Match: match}
}

// AvailableOptions перечисляет значения, встречающиеся в таблице, в порядке
// первого появления.
func AvailableOptions() Options {
	var o Options
	for _, e := range table {
		if !slices.Contains(o.BodyTypes, e.bodyType) {
			o.BodyTypes = append(o.BodyTypes, e.bodyType)
		}
		if !slices.Contains(o.Occasions, e.occasion) {
			o.Occasions = append(o.Occasions, e.occasion)
		}
		if !slices.Contains(o.Fabrics, e.fabric) {
			o.Fabrics = append(o.Fabrics, e.fabric)
		}
	}
	return o
}

// Matcher даёт доступ к подбору через значение, которое можно передать обработчику.
type Matcher struct{}

func (Matcher) Recommend(bodyType, occasion, fabric string) ([]models.Suggestion, error) {
	return Recommend(bodyType, occasion, fabric)
}

func (Matcher) Options() Options {
	return AvailableOptions()
}
