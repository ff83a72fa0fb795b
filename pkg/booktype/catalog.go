package booktype

var romantic = Definition{
	Kind:        Romantic,
	ID:          "romantic",
	Title:       "Романтическая книга",
	Description: "Для второй половинки",
	Price:       "2,990₽",
	BookTitle:   "Наша История Любви",
	ChapterTitles: []string{
		"Наша Встреча",
		"Первые Чувства",
		"Особенные Моменты",
		"Что Нас Связывает",
		"Наши Мечты",
		"Любовь Навсегда",
	},
	Questions: []Question{
		{ID: "partner_name", Text: "Как зовут вашу вторую половинку?", Label: "Имя партнера", Placeholder: "Полное имя или как вы обращаетесь", Input: InputLine, Required: true},
		{ID: "relationship_duration", Text: "Как долго вы вместе?", Label: "Сколько вместе", Placeholder: "2 года, 6 месяцев, с 2019 года...", Input: InputLine, Required: true},
		{ID: "first_meeting_place", Text: "Где и как вы познакомились?", Label: "Знакомство", Placeholder: "Опишите место встречи подробно (минимум 30 слов)", Input: InputText, Required: true},
		{ID: "first_impression", Text: "Какое первое впечатление произвел на вас партнер?", Label: "Первое впечатление", Placeholder: "Что вы подумали при первой встрече? (минимум 40 слов)", Input: InputText, Required: true},
		{ID: "first_date_story", Text: "Расскажите о вашем первом свидании", Label: "Первое свидание", Placeholder: "Куда пошли, что делали, как прошло... (минимум 60 слов)", Input: InputText, Required: true},
		{ID: "moment_of_love_realization", Text: "Когда вы поняли, что влюбились?", Label: "Момент влюбленности", Placeholder: "Опишите этот особенный момент (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "partner_best_qualities", Text: "Какие качества партнера вы цените больше всего?", Label: "Качества партнера", Placeholder: "Черты характера, поступки, особенности... (минимум 40 слов)", Input: InputText, Required: true},
		{ID: "happiest_moment_together", Text: "Самый счастливый момент в ваших отношениях", Label: "Самый счастливый момент", Placeholder: "Опишите подробно этот особенный момент (минимум 60 слов)", Input: InputText, Required: true},
		{ID: "funniest_memory", Text: "Самый смешной случай, который произошел с вами", Label: "Самый смешной случай", Placeholder: "Веселая история из ваших отношений (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "romantic_moments", Text: "Самые романтичные моменты ваших отношений", Label: "Романтичные моменты", Placeholder: "Сюрпризы, подарки, особенные жесты... (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "special_places", Text: "Ваши особенные места", Label: "Особенные места", Placeholder: "Места, которые многое значат для ваших отношений (минимум 40 слов)", Input: InputText, Required: true},
		{ID: "couple_traditions", Text: "Ваши парные традиции и ритуалы", Label: "Традиции пары", Placeholder: "То, что вы делаете вместе регулярно (минимум 40 слов)", Input: InputText, Required: true},
		{ID: "overcoming_difficulties", Text: "Как вы преодолевали трудности вместе?", Label: "Преодоление трудностей", Placeholder: "Сложные ситуации, которые вас сблизили (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "shared_dreams", Text: "О чем вы мечтаете вместе?", Label: "Общие мечты", Placeholder: "Планы на будущее, путешествия, цели... (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "love_declaration", Text: "Что бы вы хотели сказать партнеру в завершение книги?", Label: "Признание в любви", Placeholder: "Ваши самые важные слова любви (минимум 60 слов)", Input: InputText, Required: true},
		{ID: "photos", Text: "Загрузите ваши лучшие совместные фотографии", Label: "Фотографии", Input: InputFiles, Required: true},
	},
}

var family = Definition{
	Kind:        Family,
	ID:          "family",
	Title:       "Семейная хроника",
	Description: "Для всей семьи",
	Price:       "3,990₽",
	BookTitle:   "Семейная Хроника",
	ChapterTitles: []string{
		"Начало Истории",
		"Семейные Традиции",
		"Незабываемые Моменты",
		"Семейные Ценности",
		"Взгляд в Будущее",
	},
	Questions: []Question{
		{ID: "family_members", Text: "Перечислите всех членов семьи", Label: "Члены семьи", Placeholder: "Имена, возраст, роли в семье... (минимум 40 слов)", Input: InputText, Required: true},
		{ID: "family_history", Text: "Расскажите историю создания вашей семьи", Label: "История семьи", Placeholder: "Как познакомились родители, семейные корни... (минимум 60 слов)", Input: InputText, Required: true},
		{ID: "family_traditions", Text: "Какие традиции есть в вашей семье?", Label: "Традиции", Placeholder: "Праздники, ритуалы, особые моменты... (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "memorable_family_events", Text: "Самые запоминающиеся семейные события", Label: "Запоминающиеся события", Placeholder: "Дни рождения, путешествия, достижения... (минимум 60 слов)", Input: InputText, Required: true},
		{ID: "family_values", Text: "Какие ценности важны для вашей семьи?", Label: "Семейные ценности", Placeholder: "Принципы, убеждения, жизненные правила... (минимум 40 слов)", Input: InputText, Required: true},
		{ID: "family_photos", Text: "Загрузите семейные фотографии", Label: "Фотографии", Input: InputFiles, Required: true},
	},
}

var friendship = Definition{
	Kind:        Friendship,
	ID:          "friendship",
	Title:       "Книга дружбы",
	Description: "Для лучших друзей",
	Price:       "2,490₽",
	BookTitle:   "Книга Нашей Дружбы",
	ChapterTitles: []string{
		"Как Всё Началось",
		"Наши Приключения",
		"Особенная Дружба",
		"Благодарность",
		"Друзья Навсегда",
	},
	Questions: []Question{
		{ID: "friend_name", Text: "Как зовут вашего друга?", Label: "Имя друга", Placeholder: "Имя друга", Input: InputLine, Required: true},
		{ID: "friendship_beginning", Text: "История начала вашей дружбы", Label: "История дружбы", Placeholder: "Как познакомились, первые впечатления... (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "shared_adventures", Text: "Ваши совместные приключения", Label: "Совместные приключения", Placeholder: "Путешествия, веселые истории, незабываемые моменты... (минимум 60 слов)", Input: InputText, Required: true},
		{ID: "friendship_qualities", Text: "За что вы цените этого друга?", Label: "Качества друга", Placeholder: "Черты характера, поддержка, особенности... (минимум 40 слов)", Input: InputText, Required: true},
		{ID: "funny_friendship_moments", Text: "Самые смешные моменты вашей дружбы", Label: "Смешные моменты", Placeholder: "Веселые истории, шутки, курьезы... (минимум 50 слов)", Input: InputText, Required: true},
		{ID: "friendship_photos", Text: "Загрузите фотографии с другом", Label: "Фотографии", Input: InputFiles, Required: true},
	},
}
