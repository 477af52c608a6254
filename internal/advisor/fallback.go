package advisor

import (
	"strings"

	"github.com/hyperjump/lapwise/internal/ranking"
)

// Topic is the subject of a chat message, used for canned replies.
type Topic int

const (
	TopicGeneral Topic = iota
	TopicBudget
	TopicGaming
	TopicProgramming
	TopicStudent
	TopicBusiness
	TopicSpecs
	TopicBrands
)

func (t Topic) String() string {
	switch t {
	case TopicBudget:
		return "budget"
	case TopicGaming:
		return "gaming"
	case TopicProgramming:
		return "programming"
	case TopicStudent:
		return "student"
	case TopicBusiness:
		return "business"
	case TopicSpecs:
		return "specs"
	case TopicBrands:
		return "brands"
	default:
		return "general"
	}
}

// topicKeywords is checked in order; the first topic with a keyword in the
// message wins.
var topicKeywords = []struct {
	topic    Topic
	keywords []string
}{
	{TopicBudget, []string{"budget", "cheap", "affordable"}},
	{TopicGaming, []string{"gaming", "game"}},
	{TopicProgramming, []string{"programming", "coding", "development"}},
	{TopicStudent, []string{"student", "school", "university"}},
	{TopicBusiness, []string{"business", "work", "office"}},
	{TopicSpecs, []string{"specs", "cpu", "ram", "processor"}},
	{TopicBrands, []string{"brand", "apple", "dell", "hp"}},
}

// DetectTopic returns the first topic whose keyword appears in message.
func DetectTopic(message string) Topic {
	message = strings.ToLower(message)
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(message, kw) {
				return tk.topic
			}
		}
	}
	return TopicGeneral
}

// FallbackReply is the canned markdown answer for topic. A persona adds a
// tailored note to the budget and general replies.
func FallbackReply(topic Topic, persona *ranking.Persona) string {
	reply := fallbackReplies[topic]
	if persona != nil && (topic == TopicBudget || topic == TopicGeneral) {
		reply += "\n\n" + personaNote(*persona)
	}
	return reply
}

func personaNote(p ranking.Persona) string {
	switch p {
	case ranking.PersonaGaming:
		return "**For gaming:** put the money into the GPU first, then a high refresh rate screen."
	case ranking.PersonaCreative:
		return "**For creative work:** look for a color-accurate display, 16GB+ RAM and a strong CPU."
	case ranking.PersonaProgramming:
		return "**For programming:** 16GB RAM and a fast SSD matter more than the GPU."
	case ranking.PersonaStudent:
		return "**For students:** check education discounts and favor battery life and weight."
	case ranking.PersonaPortable:
		return "**For travel:** stay under 3 lbs and aim for 10+ hours of battery."
	default:
		return ""
	}
}

var fallbackReplies = map[Topic]string{
	TopicBudget: `## Budget Laptops

**Under $500**
- ASUS VivoBook 15: solid everyday performer
- Acer Aspire 5: good value with a full HD screen
- HP Pavilion 15: reliable build and decent battery

**$500 - $800**
- Lenovo IdeaPad 5: strong performance for the price
- ASUS ZenBook 14: light with a premium feel
- HP Envy x360: flexible 2-in-1 design

**Saving tips**
- Look at last year's models and certified refurbished units
- Watch back-to-school and holiday sales
- Student discounts can take 10% or more off

What budget range are you working with?`,

	TopicGaming: `## Gaming Laptops

**What matters**
- GPU: RTX 4060/4070 or RX 7600M and up
- CPU: Intel i5-12400H or Ryzen 5 7600H and up
- RAM: 16GB
- Screen: 144Hz or faster

**Picks**
- ASUS ROG Strix G15
- MSI Katana 15
- Alienware m15 R7
- Lenovo Legion 5 Pro

**Budgets**
- $800 - $1,200: 1080p gaming at high settings
- $1,200 - $1,800: 1440p and high refresh rates
- $1,800+: maximum settings and ray tracing

Which games do you want to play?`,

	TopicProgramming: `## Laptops for Programming

**What matters**
- RAM: 16GB minimum, 32GB for containers and VMs
- Storage: 512GB+ SSD
- A comfortable keyboard and a sharp screen

**Picks**
- MacBook Air M2: great battery and a Unix environment
- Lenovo ThinkPad X1 Carbon: best-in-class keyboard
- Dell XPS 15: plenty of power and a big screen
- Framework Laptop: repairable and upgradeable

**Budgets**
- $600 - $1,000: web development
- $1,000 - $2,000: full-stack work and light ML
- $2,000+: heavy builds and local models

What kind of development do you do?`,

	TopicStudent: `## Laptops for Students

**What matters**
- 8+ hours of battery to last the school day
- Under 4 lbs for carrying between classes
- A durable build and education pricing

**Picks**
- MacBook Air: long battery life and light
- ASUS VivoBook S15: good value with a big screen
- Lenovo IdeaPad 3: affordable and dependable
- HP Pavilion 14: compact with a good keyboard

**Budgets**
- $400 - $700: notes, browsing and papers
- $700 - $1,200: engineering or design software
- $1,200+: creative or technical majors

What are you studying?`,

	TopicBusiness: `## Business Laptops

**What matters**
- Security: TPM chip, fingerprint reader and vPro
- 16GB RAM for multitasking
- A solid build and good service options

**Picks**
- Lenovo ThinkPad X1 Carbon
- Dell Latitude 9000 series
- MacBook Pro 14"
- HP EliteBook 800 series

Do you need it to fit a company device policy?`,

	TopicSpecs: `## Reading Laptop Specs

**Processor**
- Intel i5 / Ryzen 5: everyday work
- Intel i7 / Ryzen 7: demanding tasks
- Apple M-series: very efficient and fast

**Memory**
- 8GB: basic use
- 16GB: the comfortable default
- 32GB+: video editing, VMs and large projects

**Storage**
- Always choose an SSD
- 512GB is the practical minimum for most people

**Display**
- IPS or OLED panels have better colors
- 1080p is fine at 14"; higher resolutions look sharper on larger screens

Which spec are you unsure about?`,

	TopicBrands: `## Laptop Brands

- **Apple:** excellent build and battery, premium price
- **Dell:** XPS for premium, Latitude for business, Inspiron for value
- **HP:** Spectre and Envy for style, EliteBook for business
- **Lenovo:** ThinkPads are known for keyboards and durability
- **ASUS:** ZenBook for ultraportables, ROG for gaming

Which brands are you considering?`,

	TopicGeneral: `## Finding the Right Laptop

I can help you compare models and pick one that fits. To start, tell me:
- What you will use it for most
- Your budget
- Whether portability or performance matters more

You can also paste product links or names like "Dell XPS 13 vs MacBook Air" to compare them.`,
}
