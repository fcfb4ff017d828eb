package web

import "net/http"

type faq struct {
	Question string
	Answer   string
}

type tip struct {
	Title string
	Text  string
}

var faqs = []faq{
	{
		Question: "How do I set up a new financial goal?",
		Answer:   "Open the Goals page to see your goals grouped by how far away they are. Goals are created in your finance account and appear here with their progress and suggested investment options.",
	},
	{
		Question: "How much should I keep in my emergency fund?",
		Answer:   "Aim for six months of expenses. The Emergency Fund page multiplies your monthly expenses by six and shows how much to set aside each month to get there.",
	},
	{
		Question: "What is the 50/30/20 rule?",
		Answer:   "Spend 50% of your income on needs, 30% on wants and put 20% into savings. The Budget page lets you adjust the split while keeping it at 100%.",
	},
	{
		Question: "How is the children's fund calculated?",
		Answer:   "The monthly investment spreads what is still missing over the years until your child reaches the target age, assuming your investments grow over that time.",
	},
	{
		Question: "Can I keep my planner inputs?",
		Answer:   "Yes. Use the Save button on any planner page and your inputs are loaded the next time you open it.",
	},
}

var tips = []tip{
	{Title: "Start SIPs with as little as $500", Text: "Small monthly investments started early grow more than large ones started late."},
	{Title: "Step-Up SIPs with your income", Text: "Raise your monthly investment whenever your income goes up."},
	{Title: "Avoid high-interest debt", Text: "Pay off credit cards and personal loans before investing more."},
	{Title: "Pay Yourself First!", Text: "Move your savings out as soon as you are paid, then spend what is left."},
	{Title: "Review and Rebalance Annually", Text: "Check once a year that your investments still match your goals."},
}

type helpPage struct {
	layout
	FAQs []faq
	Tips []tip
}

func (s *Server) helpPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "help", helpPage{
		layout: s.pageLayout(r, "/help", "Help"),
		FAQs:   faqs,
		Tips:   tips,
	})
}
