package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"remote-jobs-backend/internal/domain"
)

// Curated is the non-network fallback source. Every scraping adapter is
// liable to be blocked by its target site; this one deterministically emits
// outbound search-URL postings per skill category plus static "apply here"
// platform listings, so a refresh is never empty for a non-empty skill
// selection.
type Curated struct{}

func NewCurated() *Curated { return &Curated{} }

func (s *Curated) Name() string { return "Curated" }

// searchTerms maps each skill category to the query strings used to build
// platform deep links. The first term is the primary query.
var searchTerms = map[string][]string{
	"AI & Automation":                             {"AI automation", "machine learning", "AI engineer", "artificial intelligence"},
	"AI Prompt Engineering & Optimization":        {"prompt engineer", "prompt engineering", "LLM engineer", "AI prompts"},
	"AI Training Data Labeling & RLHF":            {"AI training", "data labeling", "RLHF", "AI annotation"},
	"AI-Powered Content Moderation":               {"content moderation", "AI moderation", "trust and safety", "content review"},
	"Custom GPT/Assistant Development":            {"GPT developer", "custom GPT", "chatbot developer", "AI assistant developer"},
	"No-Code AI Automation Consulting":            {"no-code automation", "Zapier expert", "Make.com", "n8n automation"},
	"AI-Assisted Copywriting & SEO Content":       {"AI copywriter", "SEO content writer", "AI content", "copywriting"},
	"Video Script Writing for YouTube/TikTok":     {"video script writer", "YouTube scriptwriter", "TikTok content", "video content"},
	"Podcast Production & Editing":                {"podcast editor", "podcast producer", "audio editing", "podcast production"},
	"UGC (User-Generated Content) Creation":       {"UGC creator", "user generated content", "content creator", "social media content"},
	"Social Media Community Management":           {"social media manager", "community manager", "social media marketing"},
	"Website & App User Testing":                  {"user testing", "usability testing", "UX research", "website tester"},
	"Beta Testing & QA for Software":              {"QA tester", "beta tester", "software testing", "quality assurance"},
	"Search Engine Evaluation":                    {"search evaluator", "search quality", "ads evaluator", "search engine evaluation"},
	"Market Research Participant":                 {"market research", "research participant", "survey taker", "focus group"},
	"Competitive Intelligence Research":           {"competitive intelligence", "market analyst", "business intelligence", "competitor research"},
	"CRM Setup & Management (HubSpot/Salesforce)": {"HubSpot admin", "Salesforce admin", "CRM specialist", "CRM manager"},
	"Webflow/Framer Website Development":          {"Webflow developer", "Framer developer", "no-code website", "Webflow designer"},
	"Notion/Airtable Workspace Design":            {"Notion consultant", "Airtable expert", "Notion template", "workspace design"},
	"API Integration Specialist (No-Code Focus)":  {"API integration", "Zapier integration", "no-code integration", "automation specialist"},
	"Spreadsheet Automation & Dashboard Building": {"Excel automation", "Google Sheets", "spreadsheet expert", "dashboard builder"},
	"Fractional COO for Startups":                 {"fractional COO", "operations consultant", "startup operations", "COO consultant"},
	"Business Process Documentation":              {"process documentation", "SOP writer", "business process", "documentation specialist"},
	"Executive Coaching (Remote Sessions)":        {"executive coach", "business coach", "leadership coach", "career coach"},
	"Pitch Deck & Investor Presentation Creation": {"pitch deck", "investor presentation", "startup pitch", "presentation designer"},
	"Online Course Creation & Launch Consulting":  {"course creator", "online course", "course development", "e-learning developer"},
	"Product / Project Manager":                   {"product manager", "project manager", "scrum master", "agile coach"},
	"Digital Marketing Manager":                   {"digital marketing manager", "marketing manager", "growth marketing", "performance marketing"},
	"Customer Support / Success":                  {"customer support", "customer success manager", "support specialist", "client success"},
	"Telehealth / Remote Healthcare":              {"telehealth", "remote healthcare", "telemedicine", "health coach"},
}

// searchPlatform is a job board with a deep-linkable search URL.
type searchPlatform struct {
	name   string
	search func(query string) string
}

var searchPlatforms = []searchPlatform{
	{"Upwork", func(q string) string {
		return "https://www.upwork.com/nx/search/jobs/?q=" + url.QueryEscape(q) + "&sort=recency"
	}},
	{"WeWorkRemotely", func(q string) string {
		return "https://weworkremotely.com/remote-jobs/search?term=" + url.QueryEscape(q)
	}},
	{"RemoteOK", func(q string) string {
		return "https://remoteok.com/remote-jobs/" + url.QueryEscape(strings.ReplaceAll(strings.ToLower(q), " ", "-"))
	}},
	{"Indeed", func(q string) string {
		return "https://www.indeed.com/jobs?q=" + url.QueryEscape(q) + "&l=Remote&remotejob=032b3046-06a3-4876-8dfd-474eb5e7ed11"
	}},
	{"LinkedIn", func(q string) string {
		return "https://www.linkedin.com/jobs/search/?keywords=" + url.QueryEscape(q) + "&f_WT=2"
	}},
	{"FlexJobs", func(q string) string {
		return "https://www.flexjobs.com/search?search=" + url.QueryEscape(q) + "&location=Remote"
	}},
	{"Remote.co", func(q string) string {
		return "https://remote.co/remote-jobs/search/?search_keywords=" + url.QueryEscape(q)
	}},
	{"BuiltIn", func(q string) string {
		return "https://builtin.com/jobs/remote?search=" + url.QueryEscape(q)
	}},
}

// staticPlatform is a signup page rather than a search, grouped under a
// category that doubles as the job's source name.
type staticPlatform struct {
	title       string
	url         string
	category    string
	description string
	skills      []string
}

var staticPlatforms = []staticPlatform{
	{"UserTesting - Get Paid to Test", "https://www.usertesting.com/get-paid-to-test", "Testing & Research", "Get paid $4-$120 per test to review websites and apps", []string{"user testing", "ux research", "feedback"}},
	{"Testbirds - Become a Tester", "https://www.testbirds.com/en/become-a-tester/", "Testing & Research", "Crowdtesting platform for websites and apps", []string{"testing", "qa", "bug reporting"}},
	{"Trymata - Tester Signup", "https://www.trymata.com/tester/signup", "Testing & Research", "User testing platform paying $5-$30 per test", []string{"user testing", "usability", "feedback"}},
	{"Userlytics - Tester Panel", "https://www.userlytics.com/tester/", "Testing & Research", "Remote usability testing opportunities", []string{"usability testing", "ux", "research"}},
	{"TestingTime - Paid Research", "https://www.testingtime.com/en/become-a-test-user/", "Testing & Research", "Participate in paid user research studies", []string{"user research", "testing", "feedback"}},
	{"PlaybookUX - Tester Signup", "https://www.playbookux.com/tester/", "Testing & Research", "UX research platform for testers", []string{"ux research", "testing", "usability"}},
	{"dScout - Be a Scout", "https://dscout.com/be-a-scout", "Testing & Research", "Mobile research missions paying $10-$100+", []string{"research", "mobile testing", "feedback"}},
	{"Lyssna (UsabilityHub) Panel", "https://www.lyssna.com/panel/", "Testing & Research", "Quick design surveys and tests", []string{"design feedback", "surveys", "testing"}},
	{"Appen - AI Contributor", "https://appen.com/join-our-crowd/", "AI & Automation", "AI training data, annotation, and evaluation tasks", []string{"ai training", "data labeling", "rlhf", "annotation"}},
	{"Remotasks - AI Tasks", "https://www.remotasks.com/en", "AI & Automation", "AI training tasks including RLHF and data labeling", []string{"ai training", "data labeling", "tasks"}},
	{"Scale AI - Remote Workers", "https://scale.com/careers#remote", "AI & Automation", "AI data labeling and training opportunities", []string{"ai training", "data annotation", "labeling"}},
	{"Toloka - AI Training", "https://toloka.ai/tolokers/", "AI & Automation", "Crowdsourced AI training tasks", []string{"ai training", "data tasks", "annotation"}},
	{"DataAnnotation.tech", "https://www.dataannotation.tech/", "AI & Automation", "AI training and RLHF opportunities", []string{"rlhf", "ai training", "data annotation"}},
	{"Outlier AI", "https://outlier.ai/", "AI & Automation", "AI training for coding and writing tasks", []string{"ai training", "coding", "writing", "rlhf"}},
	{"GLG Expert Council Member", "https://glginsights.com/council-members/", "Advisory & Consulting", "Paid expert consultations $100-500+/hour", []string{"consulting", "expert", "advisory"}},
	{"AlphaSights Strategic Advisor", "https://www.alphasights.com/become-an-advisor/", "Advisory & Consulting", "Expert network for industry consultations", []string{"consulting", "advisory", "expert"}},
	{"Guidepoint Knowledge Advisor", "https://www.guidepoint.com/become-an-advisor/", "Advisory & Consulting", "Share expertise with investors and companies", []string{"consulting", "advisory", "research"}},
	{"Dialectica Expert Advisor", "https://dialectica.com/become-an-expert/", "Advisory & Consulting", "Expert consultations for business insights", []string{"consulting", "expert", "advisory"}},
	{"Techspert.io - Expert Network", "https://www.techspert.io/become-an-expert", "Advisory & Consulting", "Technical expert consultations", []string{"consulting", "technical", "expert"}},
	{"NewtonX Expert Network", "https://www.newtonx.com/become-an-expert/", "Advisory & Consulting", "B2B expert knowledge marketplace", []string{"consulting", "b2b", "expert"}},
	{"Fiverr - Become a Seller", "https://www.fiverr.com/start_selling", "Freelance", "Sell services in AI, automation, content, and more", []string{"freelance", "gigs", "services"}},
	{"Toptal - Apply as Freelancer", "https://www.toptal.com/freelance-jobs", "Freelance", "Top 3% freelance talent network", []string{"freelance", "expert", "consulting"}},
	{"Contra - Join as Independent", "https://contra.com/", "Freelance", "Commission-free freelance platform", []string{"freelance", "independent", "projects"}},
}

// Scrape treats the caller's keywords as selected skill categories. With no
// selection every category is emitted.
func (s *Curated) Scrape(_ context.Context, selectedSkills []string) []domain.Job {
	now := time.Now()
	var jobs []domain.Job

	categories := selectCategories(selectedSkills)

	for _, category := range categories {
		terms := searchTerms[category]
		if len(terms) == 0 {
			continue
		}
		primary := terms[0]

		capped := terms
		if len(capped) > 4 {
			capped = capped[:4]
		}

		for _, platform := range searchPlatforms {
			searchURL := platform.search(primary)
			jobs = append(jobs, domain.Job{
				ID:          generateID("curated", platform.name+"-"+primary),
				Title:       primary + " Jobs",
				Company:     platform.name,
				Source:      platform.name,
				URL:         searchURL,
				Description: fmt.Sprintf("Search for %s opportunities on %s. Click to view current listings.", category, platform.name),
				Skills:      capped,
				Posted:      now.Add(-jitter(7 * 24 * time.Hour)),
				Remote:      true,
			})
		}
	}

	for _, platform := range staticPlatforms {
		if !platformRelevant(platform, selectedSkills) {
			continue
		}
		jobs = append(jobs, domain.Job{
			ID:          generateID("static", platform.title),
			Title:       platform.title,
			Company:     "Platform",
			Source:      platform.category, // category doubles as the source filter name
			URL:         platform.url,
			Description: platform.description,
			Skills:      platform.skills,
			Posted:      now.Add(-jitter(14 * 24 * time.Hour)),
			Remote:      true,
		})
	}

	return jobs
}

// Categories returns every source name this adapter can emit, for the
// sources endpoint.
func (s *Curated) Categories() []string {
	var names []string
	for _, p := range searchPlatforms {
		names = append(names, p.name)
	}
	seen := make(map[string]bool)
	for _, p := range staticPlatforms {
		if !seen[p.category] {
			seen[p.category] = true
			names = append(names, p.category)
		}
	}
	return names
}

// selectCategories resolves the caller's skill selection against the closed
// category vocabulary, case-insensitively. Empty selection means all.
func selectCategories(selected []string) []string {
	if len(selected) == 0 {
		return domain.SkillCategories
	}

	var out []string
	for _, category := range domain.SkillCategories {
		lower := strings.ToLower(category)
		for _, skill := range selected {
			ls := strings.ToLower(skill)
			if lower == ls || strings.Contains(lower, ls) || strings.Contains(ls, firstWord(lower)) {
				out = append(out, category)
				break
			}
		}
	}
	return out
}

// platformRelevant checks a static platform against the selection by name
// overlap: category prefix or any platform skill appearing in a selected
// skill name.
func platformRelevant(platform staticPlatform, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	category := strings.ToLower(platform.category)
	for _, skill := range selected {
		name := strings.ToLower(skill)
		if strings.Contains(category, firstWord(name)) {
			return true
		}
		for _, ps := range platform.skills {
			if strings.Contains(name, ps) {
				return true
			}
		}
	}
	return false
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}

func jitter(max time.Duration) time.Duration {
	return time.Duration(rand.Int63n(int64(max)))
}
