package i18n

import "golang.org/x/text/language"

// Copy holds translatable copy for dashboard pages.
type Copy struct {
	NavOverview string
	NavAIS      string
	NavEIS      string
	NavHIS      string
	NavSIS      string
	NavExplorer string

	TitleOverview string
	TitleExplorer string
	TitleNotFound string

	HeadingNotFound string
	MessageNotFound string
	HeadingError    string
	MessageError    string
	BackToOverview  string

	ChartTopScores     string
	ChartProgramTotals string
	ChartDistribution  string
	ChartBreakdown     string
	ChartTimeline      string
	ImpactStoryTitle   string
	ImpactStoryBody    string
	HighlightsTitle    string
	PublicationsTitle  string

	TableAwardee   string
	TableField     string
	TableAwardYear string
	TableScore     string
	TableJournal   string
	TableYear      string
	TableORCR      string
}

var copyEN = Copy{
	NavOverview: "Overview",
	NavAIS:      "Academic Impact",
	NavEIS:      "Economic Impact",
	NavHIS:      "Health Impact",
	NavSIS:      "Social Impact",
	NavExplorer: "Awardee Explorer",

	TitleOverview: "Overview",
	TitleExplorer: "Awardee Explorer",
	TitleNotFound: "Page Not Found",

	HeadingNotFound: "Not found",
	MessageNotFound: "The page or awardee you were looking for does not exist.",
	HeadingError:    "Something went wrong",
	MessageError:    "The dashboard could not render this page.",
	BackToOverview:  "← Back to Overview",

	ChartTopScores:     "Top SOFEA — click a bar to drill down",
	ChartProgramTotals: "Program Totals — click a bar for the program page",
	ChartDistribution:  "SOFEA Score Distribution",
	ChartBreakdown:     "Bucket Breakdown",
	ChartTimeline:      "Career Timeline",
	ImpactStoryTitle:   "Impact Story",
	ImpactStoryBody:    "Your funding powers discoveries that translate into real-world outcomes — high-impact publications, NIH grants, startups, and therapies reaching patients.",
	HighlightsTitle:    "Recent Highlights",
	PublicationsTitle:  "Publications",

	TableAwardee:   "Awardee",
	TableField:     "Field",
	TableAwardYear: "Award Year",
	TableScore:     "Score",
	TableJournal:   "Journal",
	TableYear:      "Year",
	TableORCR:      "oRCR",
}

var copyPTBR = Copy{
	NavOverview: "Visão Geral",
	NavAIS:      "Impacto Acadêmico",
	NavEIS:      "Impacto Econômico",
	NavHIS:      "Impacto na Saúde",
	NavSIS:      "Impacto Social",
	NavExplorer: "Explorador de Premiados",

	TitleOverview: "Visão Geral",
	TitleExplorer: "Explorador de Premiados",
	TitleNotFound: "Página Não Encontrada",

	HeadingNotFound: "Não encontrado",
	MessageNotFound: "A página ou premiado que você procurava não existe.",
	HeadingError:    "Algo deu errado",
	MessageError:    "O painel não conseguiu renderizar esta página.",
	BackToOverview:  "← Voltar à Visão Geral",

	ChartTopScores:     "Maiores SOFEA — clique em uma barra para detalhar",
	ChartProgramTotals: "Totais por Programa — clique em uma barra para ver o programa",
	ChartDistribution:  "Distribuição de Pontuação SOFEA",
	ChartBreakdown:     "Composição por Categoria",
	ChartTimeline:      "Linha do Tempo da Carreira",
	ImpactStoryTitle:   "História de Impacto",
	ImpactStoryBody:    "Seu financiamento impulsiona descobertas que se traduzem em resultados reais — publicações de alto impacto, bolsas NIH, startups e terapias que chegam aos pacientes.",
	HighlightsTitle:    "Destaques Recentes",
	PublicationsTitle:  "Publicações",

	TableAwardee:   "Premiado",
	TableField:     "Área",
	TableAwardYear: "Ano do Prêmio",
	TableScore:     "Pontuação",
	TableJournal:   "Revista",
	TableYear:      "Ano",
	TableORCR:      "oRCR",
}

// Dashboard returns the copy set for a supported language tag.
func Dashboard(tag language.Tag) Copy {
	if tag == language.BrazilianPortuguese {
		return copyPTBR
	}
	base, _ := tag.Base()
	if base.String() == "pt" {
		return copyPTBR
	}
	return copyEN
}
