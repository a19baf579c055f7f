package agent

import (
	"context"

	shop "github.com/Jvntrials/COGSHALFHALF"
	"github.com/Jvntrials/COGSHALFHALF/docs"
	"github.com/Jvntrials/COGSHALFHALF/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, and they keep the context of your previous questions.

			The user runs a small shop and is here to understand the state of the books:
			what is in stock, what was sold, and whether the shop makes money.

			Devise a plan of questions for each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounded in Google Search, for the
// questions the book cannot answer: supplier prices, ingredient
// seasonality, market rates.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a researcher,
		well aware of suppliers, ingredient prices and local market rates.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a researcher for a small food shop. You can search and find anything related to
			suppliers, ingredients, prices and local market conditions. You leverage Google Search
			to ground your assertions, and you know how to relate the latest news to the user's request.
			`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of reading the shop's book.
func NewBookkeeper(store *shop.Store, currency string) *Expert {
	lib := []Function{
		summaryFunc(store, currency),
		stockFunc(store, currency),
		activityFunc(store, currency),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the shop's book.
		He can report the profit and loss summary, the current stock and the recorded activity.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the bookkeeper of a small shop. You know how to use the Tools to read the book:
			the profit and loss summary, the current stock and the recorded activity.
			You are part of a team of experts. They might ask you questions about the shop;
			pardon their approximative language and figure out what they meant.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	F func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.F(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// fail wraps an error into a function response.
func fail(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// report wraps a rendered report into a function response.
func report(id, name, content string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": content,
		},
	}
}

func summaryFunc(store *shop.Store, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the shop's profit and loss:
			revenue, purchase cost, rent, other expenses and the resulting margin.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted profit and loss summary.",
			},
		},
		F: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := store.Book()
			if err != nil {
				return fail(id, "Summary", err)
			}
			return report(id, "Summary", renderer.SummaryMarkdown(shop.NewSummary(b), currency))
		},
	}
}

func stockFunc(store *shop.Store, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Stock",
			Description: `Stock reports what is currently in stock, entries grouped by item name.

			How quantities and costs per unit are derived:

			` + must(docs.GetTopic("costing")),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the current stock.",
			},
		},
		F: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := store.Book()
			if err != nil {
				return fail(id, "Stock", err)
			}
			return report(id, "Stock", renderer.StockMarkdown(b.Stock(), currency))
		},
	}
}

func activityFunc(store *shop.Store, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Activity",
			Description: `Activity lists everything recorded in the book, oldest first:
			purchases, sales and expenses, with their dates, identifiers and amounts.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the recorded activity.",
			},
		},
		F: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := store.Book()
			if err != nil {
				return fail(id, "Activity", err)
			}
			return report(id, "Activity", renderer.ActivityMarkdown(b.Activity(), currency))
		},
	}
}
