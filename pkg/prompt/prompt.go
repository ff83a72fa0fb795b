// Package prompt turns a book type and the collected answers into the user prompt sent
// to the text-generation model.
package prompt

import (
	"maps"
	"slices"
	"strings"

	"velorabook/pkg/booktype"
)

// SystemInstruction is sent with every generation call.
const SystemInstruction = `Ты профессиональный писатель персональных книг. Создавай красивые, эмоциональные истории на русском языке на основе предоставленной информации. Книга должна быть структурированной с главами и красивым повествованием.`

// Fallback is returned for tags outside the catalog.
const Fallback = `Создай персональную книгу на основе предоставленной информации.`

const romanticPlan = `Создай красивую романтическую историю с 5-6 главами. Каждую главу начинай с заголовка "Глава N". Включи:
1. Главу о знакомстве
2. Главу о первых моментах вместе
3. Главу о любимых воспоминаниях
4. Главу о том, что делает отношения особенными
5. Главу о будущих мечтах
6. Заключение с признанием в любви

Используй эмоциональный, красивый язык. Объем примерно 1500-2000 слов.`

const familyPlan = `Создай теплую семейную историю с 5 главами. Каждую главу начинай с заголовка "Глава N":
1. История создания семьи
2. Семейные традиции и ценности
3. Незабываемые моменты
4. Что делает нашу семью особенной
5. Пожелания на будущее

Используй теплый, семейный тон. Объем примерно 1500-2000 слов.`

const friendshipPlan = `Создай веселую и трогательную историю дружбы с 5 главами. Каждую главу начинай с заголовка "Глава N":
1. Как мы познакомились
2. Наши приключения
3. Что делает нашу дружбу особенной
4. Благодарность за дружбу
5. Дружба на всю жизнь

Используй дружелюбный, теплый тон с юмором. Объем примерно 1200-1800 слов.`

// Build renders the prompt for tag. Every text question of the type is listed with the
// answer verbatim; missing answers render empty. Non-empty answers under keys the type
// does not ask for follow as "- key: value" in key order. Unknown tags yield Fallback.
func Build(tag string, answers map[string]string) string {
	kind := booktype.Parse(tag)
	def, ok := booktype.Lookup(kind)
	if !ok {
		return Fallback
	}

	var intro, plan string
	switch kind {
	case booktype.Romantic:
		intro, plan = "Создай романтическую книгу на основе следующей информации:", romanticPlan
	case booktype.Family:
		intro, plan = "Создай семейную книгу на основе следующей информации:", familyPlan
	case booktype.Friendship:
		intro, plan = "Создай книгу о дружбе на основе следующей информации:", friendshipPlan
	case booktype.Unknown:
		return Fallback
	}

	var b strings.Builder
	b.WriteString(intro)
	b.WriteByte('\n')
	for _, q := range def.Questions {
		if q.Input == booktype.InputFiles {
			continue
		}
		b.WriteString("- ")
		b.WriteString(q.Label)
		b.WriteString(": ")
		b.WriteString(answers[q.ID])
		b.WriteByte('\n')
	}
	for _, id := range slices.Sorted(maps.Keys(answers)) {
		if _, asked := def.Question(id); asked || strings.TrimSpace(answers[id]) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(id)
		b.WriteString(": ")
		b.WriteString(answers[id])
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(plan)
	return b.String()
}
