// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package analytics

import "strings"

// DatasetKey names an entry of the built-in catalogue.
type DatasetKey string

const (
	DatasetRevenue    DatasetKey = "revenue"
	DatasetEngagement DatasetKey = "engagement"
	DatasetConversion DatasetKey = "conversion"
	DatasetRetention  DatasetKey = "retention"
	DatasetSentiment  DatasetKey = "sentiment"
)

// Fallback title and description used when no dataset keyword matches.
const (
	FallbackTitle       = "Custom Analysis Results"
	FallbackDescription = "Generated insights based on your query parameters."
)

// Dataset is a pre-authored series with its title and description.
type Dataset struct {
	Key         DatasetKey
	Title       string
	Description string
	Data        Series
}

// Selection is the outcome of SelectDataset.
type Selection struct {
	Key         DatasetKey
	Title       string
	Description string
	Data        Series
	// Fallback is true when no keyword matched and the generic title was used.
	Fallback bool
}

// catalogue is in match order. The dataset key doubles as its keyword.
var catalogue = []Dataset{
	{
		Key:         DatasetRevenue,
		Title:       "Revenue Trends Analysis",
		Description: "Monthly revenue trends for the past 6 months show steady growth with a significant increase in May and June.",
		Data: Series{
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Values: []float64{12000, 19000, 15000, 21000, 26000, 30000},
		},
	},
	{
		Key:         DatasetEngagement,
		Title:       "User Engagement by Device",
		Description: "Desktop and mobile devices account for 75% of user engagement, with tablets showing increasing adoption.",
		Data: Series{
			Labels: []string{"Desktop", "Mobile", "Tablet", "Smart TV", "Others"},
			Values: []float64{45, 30, 15, 7, 3},
		},
	},
	{
		Key:         DatasetConversion,
		Title:       "Conversion Rates by Channel",
		Description: "Email marketing shows the highest conversion rate at 5.1%, followed by paid search campaigns at 4.7%.",
		Data: Series{
			Labels: []string{"Organic", "Paid Search", "Social", "Email", "Referral"},
			Values: []float64{3.2, 4.7, 2.9, 5.1, 3.8},
		},
	},
	{
		Key:         DatasetRetention,
		Title:       "Customer Retention by Segment",
		Description: "Enterprise and annual subscribers show the highest retention rates, while new users have the most opportunity for improvement.",
		Data: Series{
			Labels: []string{"New", "Monthly", "Quarterly", "Annual", "Enterprise"},
			Values: []float64{65, 75, 82, 90, 95},
		},
	},
	{
		Key:         DatasetSentiment,
		Title:       "User Feedback Sentiment Analysis",
		Description: "60% of user feedback is positive or very positive, with only 20% showing negative sentiment.",
		Data: Series{
			Labels: []string{"Very Positive", "Positive", "Neutral", "Negative", "Very Negative"},
			Values: []float64{25, 35, 20, 15, 5},
		},
	},
}

// Catalogue returns a copy of the built-in datasets in match order.
func Catalogue() []Dataset {
	out := make([]Dataset, len(catalogue))
	for i, d := range catalogue {
		d.Data = d.Data.Clone()
		out[i] = d
	}
	return out
}

// SelectDataset picks the first catalogue entry whose key appears in the
// query, case-insensitively. With no match it returns the revenue data under
// a generic title. It never fails.
func SelectDataset(query string) Selection {
	q := strings.ToLower(query)
	for _, d := range catalogue {
		if strings.Contains(q, string(d.Key)) {
			return Selection{
				Key:         d.Key,
				Title:       d.Title,
				Description: d.Description,
				Data:        d.Data.Clone(),
			}
		}
	}
	return Selection{
		Key:         DatasetRevenue,
		Title:       FallbackTitle,
		Description: FallbackDescription,
		Data:        catalogue[0].Data.Clone(),
		Fallback:    true,
	}
}
