package catalog

import (
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
)

// RoutingNotice is posted while a message is being classified.
const RoutingNotice = "🔍 Analyzing your request and routing to specialist agents..."

const briefContent = `I've activated our specialist agents to create a comprehensive campaign brief with data-driven insights and strategic recommendations.

**Campaign Objectives & KPIs**
- Total Budget: $100K
- Target ROAS: 2.8x
- Campaign Duration: 45 Days
- Target Reach: 125K

**Target Audience Breakdown**
- Primary: Millennials (25-40): 65%
- Secondary: Gen Z (18-28): 25%
- Tertiary: Gen X (35-50): 10%

**Channel Strategy & Budget Allocation**
| Channel | Budget | Share | Expected ROAS | Primary Goal |
|---|---|---|---|---|
| Google Ads | $40,000 | 40% | 3.2x | Conversions |
| Meta (FB/IG) | $35,000 | 35% | 2.8x | Awareness |
| TikTok | $15,000 | 15% | 2.4x | Engagement |
| LinkedIn | $10,000 | 10% | 2.6x | B2B Leads |`

const creativeContent = `The Creative Agent has generated multiple high-performing asset variants with A/B testing recommendations and performance predictions.

| Format | Platforms | Size | Predicted CTR | Notes |
|---|---|---|---|---|
| Carousel | Instagram, Facebook | 1080x1080px, 2-10 cards | 3.2% | Best for product showcase |
| Video | TikTok, Instagram Stories | 9:16 vertical, 15-30 seconds | 2.8% | High engagement format |
| Collection | Facebook, Google Ads | Multiple sizes | 2.5% | Shopping focused |

Status: A/B Test Ready, Brand Compliant, Mobile Optimized, Review Recommended.`

const journeyContent = `The Journey Agent has mapped your optimal customer flow with 5 touchpoints and an 8.2% predicted conversion rate.

1. Awareness (Email + Social): Day 1-3
2. Consideration (Retargeting): Day 4-7
3. Intent (SMS + Push): Day 8-10
4. Conversion (Cart Recovery): Day 11-14`

const performanceContent = `The Performance Agent has analyzed your campaign data and identified key optimization opportunities across all channels.

| Segment | ROAS | Conv. Rate | Spend | Recommendation |
|---|---|---|---|---|
| Millennials Mobile | 4.2x | 18.5% | $15,200 | Scale up 40% |
| Retargeting - Cart | 3.8x | 15.2% | $8,900 | Increase budget |
| Lookalike - Top 1% | 2.1x | 8.7% | $12,400 | Optimize creative |
| Cold Audience | 1.4x | 4.2% | $18,600 | Pause & review |`

const audienceContent = `The Audience Agent has identified 4 high-value customer segments with detailed behavioral analysis and targeting recommendations.

- Core Shoppers: 125K
- Browse Abandoners: 89K
- VIP Lookalikes: 200K
- Competitor Shoppers: 156K`

const paidMediaContent = `The Paid Media Agent has optimized your $100K budget allocation with projected 2.8x ROAS improvement across all channels.

**Optimized Budget Allocation**
- $40K Google Ads (40%): Strong search performance
- $33K Meta (33%): High engagement rates
- $20K TikTok (20%): Growing younger demo
- $7K Testing (7%): New channel exploration`

const generalContent = `I'm here to help with all your marketing needs! I can assist with:

• **Campaign Briefs** - Strategic planning and objectives
• **Creative Generation** - Assets, copy, and visual concepts
• **Journey Design** - Customer flow optimization
• **Performance Analysis** - Data insights and optimization
• **Audience Targeting** - Segment identification and profiling
• **Paid Media** - Budget optimization and platform management

What would you like to work on next?`

var responses = map[router.Category]models.Response{
	router.CategoryBrief:       {AgentName: "Campaign Brief Generator", Content: briefContent},
	router.CategoryCreative:    {AgentName: "Creative Generator", Content: creativeContent},
	router.CategoryJourney:     {AgentName: "Journey Designer", Content: journeyContent},
	router.CategoryPerformance: {AgentName: "Performance Analyst", Content: performanceContent},
	router.CategoryAudience:    {AgentName: "Audience Specialist", Content: audienceContent},
	router.CategoryPaidMedia:   {AgentName: "Paid Media Optimizer", Content: paidMediaContent},
	router.CategoryGeneral:     {AgentName: models.DefaultAgentName, Content: generalContent},
}

// ResponseFor returns the canned reply for c, or the general reply.
func ResponseFor(c router.Category) models.Response {
	if r, ok := responses[c]; ok {
		return r
	}
	return responses[router.CategoryGeneral]
}

var followUps = map[router.Category][]string{
	router.CategoryBrief: {
		"Generate creative assets for this campaign",
		"Design the customer journey",
		"Set up audience targeting",
	},
	router.CategoryCreative: {
		"Create campaign brief for these assets",
		"Set up A/B testing",
		"Design customer journey",
	},
	router.CategoryJourney: {
		"Generate creative assets for touchpoints",
		"Analyze performance metrics",
		"Optimize budget allocation",
	},
	router.CategoryPerformance: {
		"Apply recommended optimizations",
		"Generate new creative variants",
		"Reallocate budget to top performers",
	},
	router.CategoryAudience: {
		"Create campaign brief for these segments",
		"Generate targeted creative assets",
		"Set up journey flows",
	},
	router.CategoryPaidMedia: {
		"Generate creative assets for top channels",
		"Create audience segments",
		"Design conversion journeys",
	},
}

// FollowUps returns suggested next prompts for c. General has none.
func FollowUps(c router.Category) []string {
	return append([]string(nil), followUps[c]...)
}
