package catalog

import "github.com/ai-heroes/storyquest/internal/activity"

// Built-in story set. Each story carries full French, English and Arabic
// content; scrambled words are letter permutations of their solutions, which
// the catalog tests verify.
var seedStories = []Story{
	{
		ID:            "tibo-the-helper",
		Image:         "stories/tibo/cover.png",
		ColoringImage: "stories/tibo/coloring.png",
		VideoURL:      "https://videos.ai-heroes.example/tibo",
		RobotInfo: []InfoField{
			{Label: "Height", Value: "1.2 m"},
			{Label: "Weight", Value: "35 kg"},
			{Label: "Power", Value: "Battery, 8 h"},
			{Label: "Sensors", Value: "2 cameras, 4 microphones"},
		},
		Content: map[string]StoryContent{
			"en": {
				Title: "Tibo the Helper",
				Paragraphs: []string{
					"Tibo is a small white robot who lives with the Benali family. Every morning he rolls out of his charging dock, stretches his mechanical arms and says hello to everyone.",
					"Tibo sees the world through two little cameras and listens with four microphones. When grandma drops her glasses, Tibo finds them under the sofa in seconds.",
					"At night, Tibo tidies the toys, turns off the lights and rolls back to his dock. Helping the family is what makes his lights blink with joy.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "What is Tibo's job?", Options: []string{"Helping at home", "Flying to Mars", "Painting pictures"}, CorrectOption: "Helping at home"},
					{Prompt: "What does Tibo use to see?", Options: []string{"Cameras", "Candles", "Glasses"}, CorrectOption: "Cameras"},
					{Prompt: "Where does Tibo sleep?", Options: []string{"On his charging dock", "In a bed", "In the garden"}, CorrectOption: "On his charging dock"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "Tibo's eyes", CorrectAnswer: "cameras"},
					{Prompt: "Tibo's energy", CorrectAnswer: "electricity"},
					{Prompt: "Tibo's family", CorrectAnswer: "the Benalis"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "torbo", Solution: "robot", Hint: "A machine like Tibo"},
					{Scrambled: "perleh", Solution: "helper", Hint: "Someone who assists you"},
				},
			},
			"fr": {
				Title: "Tibo l'assistant",
				Paragraphs: []string{
					"Tibo est un petit robot blanc qui vit chez la famille Benali. Chaque matin, il quitte sa station de recharge, étire ses bras mécaniques et dit bonjour à tout le monde.",
					"Tibo voit le monde avec deux petites caméras et écoute avec quatre microphones. Quand mamie perd ses lunettes, Tibo les retrouve sous le canapé en quelques secondes.",
					"Le soir, Tibo range les jouets, éteint les lumières et retourne sur sa station. Aider la famille, c'est ce qui fait clignoter ses lumières de joie.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "Quel est le travail de Tibo ?", Options: []string{"Aider à la maison", "Voler vers Mars", "Peindre des tableaux"}, CorrectOption: "Aider à la maison"},
					{Prompt: "Avec quoi Tibo voit-il ?", Options: []string{"Des caméras", "Des bougies", "Des lunettes"}, CorrectOption: "Des caméras"},
					{Prompt: "Où Tibo dort-il ?", Options: []string{"Sur sa station de recharge", "Dans un lit", "Dans le jardin"}, CorrectOption: "Sur sa station de recharge"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "Les yeux de Tibo", CorrectAnswer: "des caméras"},
					{Prompt: "L'énergie de Tibo", CorrectAnswer: "l'électricité"},
					{Prompt: "La famille de Tibo", CorrectAnswer: "les Benali"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "tobor", Solution: "robot", Hint: "Une machine comme Tibo"},
					{Scrambled: "sionam", Solution: "maison", Hint: "Là où habite Tibo"},
				},
			},
			"ar": {
				Title: "تيبو المساعد",
				Paragraphs: []string{
					"تيبو روبوت أبيض صغير يعيش مع عائلة بن علي. كل صباح يخرج من محطة الشحن، يمدّ ذراعيه الآليتين ويقول صباح الخير للجميع.",
					"يرى تيبو العالم بكاميرتين صغيرتين ويسمع بأربعة ميكروفونات. عندما تفقد الجدة نظارتها، يجدها تيبو تحت الأريكة في ثوانٍ.",
					"في المساء يرتب تيبو الألعاب، يطفئ الأنوار ويعود إلى محطته. مساعدة العائلة هي ما يجعل أضواءه ترقص فرحاً.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "ما هو عمل تيبو؟", Options: []string{"المساعدة في المنزل", "الطيران إلى المريخ", "رسم اللوحات"}, CorrectOption: "المساعدة في المنزل"},
					{Prompt: "بماذا يرى تيبو؟", Options: []string{"بالكاميرات", "بالشموع", "بالنظارات"}, CorrectOption: "بالكاميرات"},
					{Prompt: "أين ينام تيبو؟", Options: []string{"على محطة الشحن", "في سرير", "في الحديقة"}, CorrectOption: "على محطة الشحن"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "عينا تيبو", CorrectAnswer: "كاميرات"},
					{Prompt: "طاقة تيبو", CorrectAnswer: "الكهرباء"},
					{Prompt: "عائلة تيبو", CorrectAnswer: "عائلة بن علي"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "توبور", Solution: "روبوت", Hint: "آلة مثل تيبو"},
					{Scrambled: "زلمن", Solution: "منزل", Hint: "المكان الذي يعيش فيه تيبو"},
				},
			},
		},
		Resources: map[string]EducatorResources{
			"en": {DiscussionPrompts: []string{
				"What chores could a robot help with at your home?",
				"How is Tibo different from a person who helps?",
				"Why does Tibo need to recharge?",
			}},
			"fr": {DiscussionPrompts: []string{
				"Quelles tâches un robot pourrait-il faire chez toi ?",
				"En quoi Tibo est-il différent d'une personne qui aide ?",
				"Pourquoi Tibo doit-il se recharger ?",
			}},
			"ar": {DiscussionPrompts: []string{
				"ما الأعمال التي يمكن أن يساعد بها روبوت في منزلك؟",
				"كيف يختلف تيبو عن شخص يساعد؟",
				"لماذا يحتاج تيبو إلى الشحن؟",
			}},
		},
	},
	{
		ID:            "luna-the-explorer",
		Image:         "stories/luna/cover.png",
		ColoringImage: "stories/luna/coloring.png",
		VideoURL:      "https://videos.ai-heroes.example/luna",
		RobotInfo: []InfoField{
			{Label: "Height", Value: "2.2 m"},
			{Label: "Weight", Value: "899 kg"},
			{Label: "Power", Value: "Solar panels"},
			{Label: "Top speed", Value: "4 cm per second"},
		},
		Content: map[string]StoryContent{
			"en": {
				Title: "Luna the Explorer",
				Paragraphs: []string{
					"Far away on the red planet Mars, a rover named Luna rolls slowly over the dusty rocks. Her six wheels leave little tracks in the orange sand.",
					"Luna drinks sunlight with her solar panels and tastes the soil with a laser. Every evening she sends photos across space, all the way to the children on Earth.",
					"One day Luna found a rock shaped like a heart. The scientists cheered, and Luna blinked her lights at the tiny blue dot in her sky: home.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "Where does Luna explore?", Options: []string{"Mars", "The ocean", "A forest"}, CorrectOption: "Mars"},
					{Prompt: "How does Luna get her energy?", Options: []string{"From the sun", "From petrol", "From batteries she buys"}, CorrectOption: "From the sun"},
					{Prompt: "What did Luna find?", Options: []string{"A heart-shaped rock", "A river", "A tree"}, CorrectOption: "A heart-shaped rock"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "Luna's legs", CorrectAnswer: "six wheels"},
					{Prompt: "Luna's food", CorrectAnswer: "sunlight"},
					{Prompt: "Luna's letters home", CorrectAnswer: "photos"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "verro", Solution: "rover", Hint: "A robot that drives on other planets"},
					{Scrambled: "tenalp", Solution: "planet", Hint: "Mars is one"},
				},
			},
			"fr": {
				Title: "Luna l'exploratrice",
				Paragraphs: []string{
					"Très loin, sur la planète rouge Mars, un rover nommé Luna roule doucement sur les rochers poussiéreux. Ses six roues laissent de petites traces dans le sable orange.",
					"Luna boit la lumière du soleil avec ses panneaux solaires et goûte le sol avec un laser. Chaque soir, elle envoie des photos à travers l'espace, jusqu'aux enfants de la Terre.",
					"Un jour, Luna a trouvé un rocher en forme de cœur. Les scientifiques ont applaudi, et Luna a fait clignoter ses lumières vers le petit point bleu dans son ciel : la maison.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "Où Luna explore-t-elle ?", Options: []string{"Sur Mars", "Dans l'océan", "Dans une forêt"}, CorrectOption: "Sur Mars"},
					{Prompt: "D'où vient l'énergie de Luna ?", Options: []string{"Du soleil", "De l'essence", "Des piles du magasin"}, CorrectOption: "Du soleil"},
					{Prompt: "Qu'a trouvé Luna ?", Options: []string{"Un rocher en forme de cœur", "Une rivière", "Un arbre"}, CorrectOption: "Un rocher en forme de cœur"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "Les jambes de Luna", CorrectAnswer: "six roues"},
					{Prompt: "La nourriture de Luna", CorrectAnswer: "la lumière du soleil"},
					{Prompt: "Les lettres de Luna", CorrectAnswer: "des photos"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "liotée", Solution: "étoile", Hint: "Elle brille dans le ciel"},
					{Scrambled: "tènalpe", Solution: "planète", Hint: "Mars en est une"},
				},
			},
			"ar": {
				Title: "لونا المستكشفة",
				Paragraphs: []string{
					"بعيداً على الكوكب الأحمر المريخ، تتحرك عربة جوالة اسمها لونا ببطء فوق الصخور المغبرة. عجلاتها الست تترك آثاراً صغيرة في الرمل البرتقالي.",
					"تشرب لونا ضوء الشمس بألواحها الشمسية وتتذوق التربة بالليزر. كل مساء ترسل صوراً عبر الفضاء إلى الأطفال على الأرض.",
					"في يوم من الأيام وجدت لونا صخرة على شكل قلب. هتف العلماء فرحاً، وأومضت لونا بأضوائها نحو النقطة الزرقاء الصغيرة في سمائها: الوطن.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "أين تستكشف لونا؟", Options: []string{"على المريخ", "في المحيط", "في غابة"}, CorrectOption: "على المريخ"},
					{Prompt: "من أين تحصل لونا على طاقتها؟", Options: []string{"من الشمس", "من الوقود", "من بطاريات تشتريها"}, CorrectOption: "من الشمس"},
					{Prompt: "ماذا وجدت لونا؟", Options: []string{"صخرة على شكل قلب", "نهراً", "شجرة"}, CorrectOption: "صخرة على شكل قلب"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "أرجل لونا", CorrectAnswer: "ست عجلات"},
					{Prompt: "طعام لونا", CorrectAnswer: "ضوء الشمس"},
					{Prompt: "رسائل لونا", CorrectAnswer: "الصور"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "رقم", Solution: "قمر", Hint: "يضيء في الليل"},
					{Scrambled: "بككو", Solution: "كوكب", Hint: "المريخ واحد منها"},
				},
			},
		},
		Resources: map[string]EducatorResources{
			"en": {DiscussionPrompts: []string{
				"Why do we send robots to Mars instead of people?",
				"What would you ask Luna to photograph?",
				"How long do you think Luna's messages take to reach Earth?",
			}},
			"fr": {DiscussionPrompts: []string{
				"Pourquoi envoie-t-on des robots sur Mars plutôt que des personnes ?",
				"Que demanderais-tu à Luna de photographier ?",
				"Combien de temps mettent les messages de Luna pour arriver sur Terre ?",
			}},
			"ar": {DiscussionPrompts: []string{
				"لماذا نرسل روبوتات إلى المريخ بدلاً من البشر؟",
				"ماذا تطلب من لونا أن تصوّر؟",
				"كم من الوقت تحتاج رسائل لونا لتصل إلى الأرض؟",
			}},
		},
	},
	{
		ID:            "pixel-the-artist",
		Image:         "stories/pixel/cover.png",
		ColoringImage: "stories/pixel/coloring.png",
		VideoURL:      "https://videos.ai-heroes.example/pixel",
		RobotInfo: []InfoField{
			{Label: "Height", Value: "0.9 m"},
			{Label: "Weight", Value: "18 kg"},
			{Label: "Power", Value: "Battery, 5 h"},
			{Label: "Tools", Value: "3 brushes, 1 color scanner"},
		},
		Content: map[string]StoryContent{
			"en": {
				Title: "Pixel the Artist",
				Paragraphs: []string{
					"In a sunny art studio lives Pixel, a robot with a brush in each hand and one behind his ear. His color scanner can tell apart a thousand shades of blue.",
					"Pixel does not copy paintings. He looks at the sea, listens to the waves, and mixes a color nobody has named yet.",
					"When children visit the studio, Pixel lends them his brushes. The best paintings, he says with a beep, are the ones made together.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "Where does Pixel live?", Options: []string{"In an art studio", "On a boat", "In a cave"}, CorrectOption: "In an art studio"},
					{Prompt: "What can Pixel's scanner do?", Options: []string{"Tell apart shades of color", "Cook dinner", "Play music"}, CorrectOption: "Tell apart shades of color"},
					{Prompt: "What does Pixel share with children?", Options: []string{"His brushes", "His battery", "His wheels"}, CorrectOption: "His brushes"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "Pixel's tool", CorrectAnswer: "a brush"},
					{Prompt: "Pixel's inspiration", CorrectAnswer: "the sea"},
					{Prompt: "Pixel's favorite paintings", CorrectAnswer: "the ones made together"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "tniap", Solution: "paint", Hint: "What artists do"},
					{Scrambled: "rolco", Solution: "color", Hint: "Red is one"},
				},
			},
			"fr": {
				Title: "Pixel l'artiste",
				Paragraphs: []string{
					"Dans un atelier ensoleillé vit Pixel, un robot avec un pinceau dans chaque main et un autre derrière l'oreille. Son scanner de couleurs distingue mille nuances de bleu.",
					"Pixel ne copie pas les tableaux. Il regarde la mer, écoute les vagues, et mélange une couleur que personne n'a encore nommée.",
					"Quand des enfants visitent l'atelier, Pixel leur prête ses pinceaux. Les plus beaux tableaux, dit-il avec un bip, sont ceux que l'on fait ensemble.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "Où vit Pixel ?", Options: []string{"Dans un atelier", "Sur un bateau", "Dans une grotte"}, CorrectOption: "Dans un atelier"},
					{Prompt: "Que sait faire le scanner de Pixel ?", Options: []string{"Distinguer les nuances de couleurs", "Préparer le dîner", "Jouer de la musique"}, CorrectOption: "Distinguer les nuances de couleurs"},
					{Prompt: "Que partage Pixel avec les enfants ?", Options: []string{"Ses pinceaux", "Sa batterie", "Ses roues"}, CorrectOption: "Ses pinceaux"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "L'outil de Pixel", CorrectAnswer: "un pinceau"},
					{Prompt: "L'inspiration de Pixel", CorrectAnswer: "la mer"},
					{Prompt: "Les tableaux préférés de Pixel", CorrectAnswer: "ceux faits ensemble"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "ruelouc", Solution: "couleur", Hint: "Le rouge en est une"},
					{Scrambled: "aucepin", Solution: "pinceau", Hint: "L'outil du peintre"},
				},
			},
			"ar": {
				Title: "بيكسل الفنان",
				Paragraphs: []string{
					"في مرسم مشمس يعيش بيكسل، روبوت يحمل فرشاة في كل يد وأخرى خلف أذنه. يستطيع ماسح الألوان لديه التمييز بين ألف درجة من الأزرق.",
					"بيكسل لا ينسخ اللوحات. ينظر إلى البحر، يستمع إلى الأمواج، ويمزج لوناً لم يسمّه أحد بعد.",
					"عندما يزور الأطفال المرسم، يعيرهم بيكسل فراشيه. يقول بصوت آلي: أجمل اللوحات هي التي نرسمها معاً.",
				},
				Quiz: []activity.QuizItem{
					{Prompt: "أين يعيش بيكسل؟", Options: []string{"في مرسم", "على قارب", "في كهف"}, CorrectOption: "في مرسم"},
					{Prompt: "ماذا يفعل ماسح بيكسل؟", Options: []string{"يميّز درجات الألوان", "يطبخ العشاء", "يعزف الموسيقى"}, CorrectOption: "يميّز درجات الألوان"},
					{Prompt: "ماذا يشارك بيكسل مع الأطفال؟", Options: []string{"فراشيه", "بطاريته", "عجلاته"}, CorrectOption: "فراشيه"},
				},
				Matching: []activity.MatchItem{
					{Prompt: "أداة بيكسل", CorrectAnswer: "فرشاة"},
					{Prompt: "إلهام بيكسل", CorrectAnswer: "البحر"},
					{Prompt: "لوحات بيكسل المفضلة", CorrectAnswer: "التي تُرسم معاً"},
				},
				Scramble: []activity.ScrambleItem{
					{Scrambled: "نول", Solution: "لون", Hint: "الأحمر واحد منها"},
					{Scrambled: "نانف", Solution: "فنان", Hint: "شخص يرسم"},
				},
			},
		},
		Resources: map[string]EducatorResources{
			"en": {DiscussionPrompts: []string{
				"Can a robot be creative? Why or why not?",
				"What color would you invent with Pixel?",
				"Why does Pixel like painting with others?",
			}},
			"fr": {DiscussionPrompts: []string{
				"Un robot peut-il être créatif ? Pourquoi ?",
				"Quelle couleur inventerais-tu avec Pixel ?",
				"Pourquoi Pixel aime-t-il peindre avec les autres ?",
			}},
			"ar": {DiscussionPrompts: []string{
				"هل يمكن للروبوت أن يكون مبدعاً؟ ولماذا؟",
				"أي لون ستخترع مع بيكسل؟",
				"لماذا يحب بيكسل الرسم مع الآخرين؟",
			}},
		},
	},
}
