// Package printable renders the educator hub's print materials: a per-story
// resource sheet (story text, discussion prompts, robot ID card, answer
// keys) and a per-session results sheet.
package printable

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ai-heroes/storyquest/internal/catalog"
	"github.com/ai-heroes/storyquest/internal/session"
)

// Per-language labels for the sheet chrome, in the spirit of the app's UI
// strings. Unknown languages fall back to English.
var labels = map[string]map[string]string{
	"en": {
		"resources": "Educator Resources",
		"story":     "The Story",
		"prompts":   "Discussion Prompts",
		"idcard":    "Robot ID Card",
		"answerkey": "Answer Key",
		"quiz":      "Multiple Choice",
		"matching":  "Matching Game",
		"scramble":  "Word Scramble",
		"results":   "Results",
		"activity":  "Activity",
		"score":     "Score",
		"combined":  "Overall",
		"video":     "Video",
	},
	"fr": {
		"resources": "Ressources pour les éducateurs",
		"story":     "L'histoire",
		"prompts":   "Pistes de discussion",
		"idcard":    "Carte d'identité du robot",
		"answerkey": "Corrigé",
		"quiz":      "QCM",
		"matching":  "Jeu de correspondance",
		"scramble":  "Mots mêlés",
		"results":   "Résultats",
		"activity":  "Activité",
		"score":     "Score",
		"combined":  "Total",
		"video":     "Vidéo",
	},
	"ar": {
		"resources": "مصادر للمعلمين",
		"story":     "القصة",
		"prompts":   "محاور للنقاش",
		"idcard":    "بطاقة تعريف الروبوت",
		"answerkey": "مفتاح الإجابات",
		"quiz":      "الاختيار من متعدد",
		"matching":  "لعبة المطابقة",
		"scramble":  "ترتيب الكلمات",
		"results":   "النتائج",
		"activity":  "النشاط",
		"score":     "النتيجة",
		"combined":  "المجموع",
		"video":     "فيديو",
	},
}

func labelSet(lang string) map[string]string {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels["en"]
}

func direction(lang string) string {
	if lang == "ar" {
		return "rtl"
	}
	return "ltr"
}

// QA is one answer-key line.
type QA struct {
	Prompt string
	Answer string
}

type resourceData struct {
	L          map[string]string
	Dir        string
	Title      string
	Paragraphs []string
	Prompts    []string
	RobotInfo  []catalog.InfoField
	VideoURL   string
	Quiz       []QA
	Matching   []QA
	Scramble   []QA
}

// RenderResourceSheet writes the printable resource sheet for one story in
// one language. This is the only surface where answer keys leave the server,
// and it sits behind the educator role.
func RenderResourceSheet(w io.Writer, story catalog.Story, lang string) error {
	content, ok := story.Localized(lang)
	if !ok {
		return fmt.Errorf("story %s: no content for %s", story.ID, lang)
	}
	res, _ := story.LocalizedResources(lang)

	data := resourceData{
		L:          labelSet(lang),
		Dir:        direction(lang),
		Title:      content.Title,
		Paragraphs: content.Paragraphs,
		Prompts:    res.DiscussionPrompts,
		RobotInfo:  story.RobotInfo,
		VideoURL:   story.VideoURL,
	}
	for _, q := range content.Quiz {
		data.Quiz = append(data.Quiz, QA{Prompt: q.Prompt, Answer: q.CorrectOption})
	}
	for _, m := range content.Matching {
		data.Matching = append(data.Matching, QA{Prompt: m.Prompt, Answer: m.CorrectAnswer})
	}
	for _, ws := range content.Scramble {
		data.Scramble = append(data.Scramble, QA{Prompt: ws.Scrambled, Answer: ws.Solution})
	}
	return resourceTmpl.Execute(w, data)
}

type resultsData struct {
	L        map[string]string
	Dir      string
	Title    string
	Rows     []resultsRow
	Combined string
}

type resultsRow struct {
	Activity string
	Score    string
}

// RenderResultsSheet writes the printable results sheet for one completed
// session.
func RenderResultsSheet(w io.Writer, story catalog.Story, rec session.Record) error {
	content, ok := story.Localized(rec.Lang)
	if !ok {
		return fmt.Errorf("story %s: no content for %s", story.ID, rec.Lang)
	}
	l := labelSet(rec.Lang)
	data := resultsData{
		L:     l,
		Dir:   direction(rec.Lang),
		Title: content.Title,
		Rows: []resultsRow{
			{Activity: l["quiz"], Score: scoreLine(rec.Scores.Quiz.Correct, rec.Scores.Quiz.Total, rec.Scores.Quiz.Percentage)},
			{Activity: l["matching"], Score: scoreLine(rec.Scores.Matching.Correct, rec.Scores.Matching.Total, rec.Scores.Matching.Percentage)},
			{Activity: l["scramble"], Score: scoreLine(rec.Scores.Scramble.Correct, rec.Scores.Scramble.Total, rec.Scores.Scramble.Percentage)},
		},
		Combined: scoreLine(rec.Combined.Correct, rec.Combined.Total, rec.Combined.Percentage),
	}
	return resultsTmpl.Execute(w, data)
}

func scoreLine(correct, total, pct int) string {
	return fmt.Sprintf("%d / %d (%d%%)", correct, total, pct)
}

var resourceTmpl = template.Must(template.New("resource").Parse(`<!DOCTYPE html>
<html dir="{{.Dir}}">
<head><meta charset="utf-8"><title>{{.Title}} — {{.L.resources}}</title></head>
<body>
<h1>{{.Title}}</h1>
<h2>{{.L.story}}</h2>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}
<h2>{{.L.idcard}}</h2>
<table>
{{range .RobotInfo}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
{{end}}</table>
<p><a href="{{.VideoURL}}">{{.L.video}}</a></p>
<h2>{{.L.prompts}}</h2>
<ul>
{{range .Prompts}}<li>{{.}}</li>
{{end}}</ul>
<h2>{{.L.answerkey}}</h2>
<h3>{{.L.quiz}}</h3>
<ol>
{{range .Quiz}}<li>{{.Prompt}} — <strong>{{.Answer}}</strong></li>
{{end}}</ol>
<h3>{{.L.matching}}</h3>
<ol>
{{range .Matching}}<li>{{.Prompt}} — <strong>{{.Answer}}</strong></li>
{{end}}</ol>
<h3>{{.L.scramble}}</h3>
<ol>
{{range .Scramble}}<li>{{.Prompt}} — <strong>{{.Answer}}</strong></li>
{{end}}</ol>
</body>
</html>
`))

var resultsTmpl = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html dir="{{.Dir}}">
<head><meta charset="utf-8"><title>{{.Title}} — {{.L.results}}</title></head>
<body>
<h1>{{.Title}} — {{.L.results}}</h1>
<table>
<tr><th>{{.L.activity}}</th><th>{{.L.score}}</th></tr>
{{range .Rows}}<tr><td>{{.Activity}}</td><td>{{.Score}}</td></tr>
{{end}}<tr><th>{{.L.combined}}</th><th>{{.Combined}}</th></tr>
</table>
</body>
</html>
`))
