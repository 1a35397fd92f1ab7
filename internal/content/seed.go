package content

// idx is a convenience for seeding option-index answers.
func idx(i int) *int { return &i }

// SeedLessons returns the built-in money-skills curriculum in display order.
// Callers pass the result to NewRegistry; nothing here is registered globally.
func SeedLessons() []Lesson {
	return []Lesson{
		budgetingLesson(),
		savingLesson(),
		bankingLesson(),
		creditLesson(),
		debtLesson(),
		incomeLesson(),
		investingLesson(),
	}
}

func budgetingLesson() Lesson {
	return Lesson{
		ID:    "budgeting",
		Title: "Budgeting Basics",
		Introduction: "Welcome! I'm your money mentor. Today we're talking about budgeting — " +
			"the simple habit of telling your money where to go before it disappears on its own. " +
			"Ready to get started?",
		PreTestIntro: "Before we dive in, let's see what you already know. " +
			"There are no wrong answers here — this just helps me understand where you're starting from.",
		PreTest: []PreTestItem{
			{
				ID:       "budget-pre-1",
				Question: "Which of these is a NEED rather than a want?\nA. Streaming subscription\nB. Rent\nC. Concert tickets",
				Options:  []string{"A. Streaming subscription", "B. Rent", "C. Concert tickets"},
				Answer:   "B",
			},
			{
				ID:           "budget-pre-2",
				Question:     "In your own words, what do you think a budget is for?",
				MentorAnswer: "Good thinking! However you put it, a budget is really just a plan for your money. We'll sharpen that idea together.",
			},
			{
				ID:       "budget-pre-3",
				Question: "In the 50/30/20 rule, what does the 20 stand for?\nA. Fun money\nB. Rent and bills\nC. Savings and debt payments",
				Options:  []string{"A. Fun money", "B. Rent and bills", "C. Savings and debt payments"},
				Answer:   "C",
			},
			{
				ID:           "budget-pre-4",
				Question:     "Have you ever tried tracking your spending for a month? How did it go?",
				MentorAnswer: "Thanks for sharing! Tracking is the hardest part for most people — we'll look at a few ways to make it painless.",
			},
			{
				ID:          "budget-pre-5",
				Question:    "True or false: a budget only works if you never spend money on fun.",
				Options:     []string{"True", "False"},
				AnswerIndex: idx(1),
			},
		},
		PreTestComplete: "Nice work on the warm-up. Now let's build the real skills.",
		Topics: []Topic{
			{
				ID:    "budget-needs-wants",
				Title: "Needs vs. Wants",
				Body: "The foundation of any budget is sorting spending into needs and wants. " +
					"Needs keep your life running: housing, groceries, utilities, transport to work. " +
					"Wants make life nicer: eating out, hobbies, subscriptions. " +
					"Neither is bad — but needs get paid first, every time.",
				Analogy: "Think of your money like water in a bucket with holes near the bottom and holes near the top. " +
					"The bottom holes (needs) drain no matter what. The top holes (wants) only drain when the bucket is full enough. " +
					"Budgeting is deciding how high to fill the bucket before the top holes start flowing.",
				Scenario: "Maya earns $2,000 a month. Rent is $900, groceries $250, bus pass $60 — those are needs, $1,210 total. " +
					"She loves bubble tea ($80/month) and games ($50/month) — wants. " +
					"Because she listed needs first, she knows exactly how much want-spending is safe.",
				DiscussionQuestion: "What's one thing you pay for that sits right on the line between a need and a want?",
			},
			{
				ID:    "budget-50-30-20",
				Title: "The 50/30/20 Rule",
				Body: "A simple starting framework: put about 50% of take-home pay toward needs, " +
					"30% toward wants, and 20% toward savings and debt payments. " +
					"The exact numbers matter less than having a split you decide on purpose.",
				Analogy: "It's like portioning a plate: half vegetables, a third protein, and the rest for dessert. " +
					"You can adjust the portions, but an empty savings section means the meal is missing something.",
				DiscussionQuestion: "If your needs took 70% of your income, which slice would you shrink first and why?",
			},
			{
				ID:    "budget-tracking",
				Title: "Tracking Without Tears",
				Body: "A budget is a guess until you track real spending. Pick the lowest-effort method you'll actually keep up: " +
					"a notes app, a spreadsheet, or your bank's category view. Review once a week for five minutes. " +
					"The goal is noticing patterns, not logging every coffee to the cent.",
				Scenario: "Dev checked his bank app every Sunday for a month and found $140 in forgotten subscriptions. " +
					"Cancelling three of them funded his entire emergency-savings contribution.",
				DiscussionQuestion: "What's the biggest surprise you think you'd find if you reviewed last month's spending?",
			},
		},
		PostTestIntro: "Time to show what you've learned! A few quick questions — pick the best answer for each.",
		PostTest: []PostTestItem{
			{
				ID:       "budget-post-1",
				Question: "Which expense should be paid first in a budget?",
				Options:  []string{"A. Concert tickets", "B. Rent", "C. A new phone case", "D. Takeout"},
				Answer:   "B",
				Explanation: "Needs like rent always come before wants. If the needs aren't covered, " +
					"everything else in the budget is built on sand.",
			},
			{
				ID:          "budget-post-2",
				Question:    "In the 50/30/20 rule, the 20% slice goes to…",
				Options:     []string{"A. Wants", "B. Needs", "C. Savings and debt payments", "D. Charity"},
				AnswerIndex: idx(2),
				Explanation: "50% needs, 30% wants, 20% savings and debt. Paying your future self is part of the plan, not leftovers.",
			},
			{
				ID:          "budget-post-3",
				Question:    "What makes a budget realistic?",
				Options:     []string{"A. Cutting out all fun spending", "B. Basing it on tracked, real spending", "C. Copying someone else's budget", "D. Rounding everything to zero"},
				AnswerIndex: idx(1),
				Explanation: "Budgets built on real numbers survive contact with real life. All-discipline budgets collapse in week two.",
			},
			{
				ID:          "budget-post-4",
				Question:    "A streaming subscription you rarely watch is best described as…",
				Options:     []string{"A. A need", "B. An investment", "C. A want worth reviewing", "D. A fixed cost you can't change"},
				AnswerIndex: idx(2),
				Explanation: "Wants aren't bad, but unused ones are the easiest wins when a budget feels tight.",
			},
			{
				ID:          "budget-post-5",
				Question:    "How often should you review your spending for a budget to keep working?",
				Options:     []string{"A. Never, set and forget", "B. Once a year", "C. Regularly, like once a week", "D. Only when money runs out"},
				AnswerIndex: idx(2),
				Explanation: "Short, regular reviews catch drift early. A five-minute weekly check beats a painful annual audit.",
			},
		},
		Completion: "That's Budgeting Basics done! Remember: a budget isn't a cage, it's a plan that buys you guilt-free spending. " +
			"You can ask me a question about anything we covered, or head back to the menu for the next lesson.",
	}
}

func savingLesson() Lesson {
	return Lesson{
		ID:    "saving",
		Title: "Saving & Emergency Funds",
		Introduction: "Today we're covering saving — not the boring 'spend nothing' kind, " +
			"but the kind that stops one flat tire from wrecking your whole month.",
		PreTestIntro: "Quick warm-up first. Answer honestly — this is just a starting snapshot.",
		PreTest: []PreTestItem{
			{
				ID:       "saving-pre-1",
				Question: "An emergency fund is mainly for…\nA. Holiday shopping\nB. Unexpected essential costs\nC. Investing in stocks",
				Options:  []string{"A. Holiday shopping", "B. Unexpected essential costs", "C. Investing in stocks"},
				Answer:   "B",
			},
			{
				ID:           "saving-pre-2",
				Question:     "If you suddenly needed $400 for a repair today, how would you cover it?",
				MentorAnswer: "Thanks for being honest — most people can't cover a surprise $400 without borrowing. That's exactly the problem an emergency fund solves.",
			},
			{
				ID:          "saving-pre-3",
				Question:    "True or false: you should only start saving once you earn a high salary.",
				Options:     []string{"True", "False"},
				AnswerIndex: idx(1),
			},
		},
		PreTestComplete: "Good start. Let's make saving feel automatic instead of heroic.",
		Topics: []Topic{
			{
				ID:    "saving-pay-yourself-first",
				Title: "Pay Yourself First",
				Body: "The most reliable saving trick is moving money to savings the moment you're paid, " +
					"before any spending happens. Willpower at the end of the month loses; an automatic transfer on payday wins.",
				Analogy: "It's like putting your vegetables on the plate before the fries arrive. " +
					"If the good stuff is already served, it actually gets eaten.",
				DiscussionQuestion: "What amount could you move on payday without feeling it — even if it seems embarrassingly small?",
			},
			{
				ID:    "saving-emergency-fund",
				Title: "The Emergency Fund",
				Body: "An emergency fund is cash set aside for genuine surprises: car repairs, medical bills, a lost job. " +
					"A starter goal is $500–$1,000, then build toward three to six months of essential expenses. " +
					"Keep it somewhere boring and separate — instantly reachable, but not mixed with spending money.",
				Scenario: "Lena's laptop died two weeks before a freelance deadline. Her $800 starter fund turned a crisis into an errand — " +
					"no credit card interest, no borrowed money, no missed deadline.",
				DiscussionQuestion: "What's the most recent 'surprise' expense that hit you — and was it truly unpredictable?",
			},
			{
				ID:    "saving-goals",
				Title: "Saving With a Target",
				Body: "Vague saving fizzles out. Specific goals stick: a number, a date, and a name — " +
					"'$600 for flights by June'. Divide by the months left and you have a monthly mission instead of a wish.",
				Analogy:            "A goal without a number is like a road trip without a destination: you're driving, but you'll never arrive.",
				DiscussionQuestion: "What would you name your first savings goal?",
			},
		},
		PostTestIntro: "Let's lock it in with a quick check.",
		PostTest: []PostTestItem{
			{
				ID:          "saving-post-1",
				Question:    "What does 'pay yourself first' mean?",
				Options:     []string{"A. Buy yourself a treat on payday", "B. Move money to savings before spending anything", "C. Pay your bills before rent", "D. Keep all cash at home"},
				AnswerIndex: idx(1),
				Explanation: "Saving first makes the decision once, automatically — instead of re-fighting the battle every month.",
			},
			{
				ID:          "saving-post-2",
				Question:    "A good starter emergency fund is about…",
				Options:     []string{"A. $50", "B. $500–$1,000", "C. One year of salary", "D. Whatever is left over"},
				AnswerIndex: idx(1),
				Explanation: "A starter fund of $500–$1,000 covers most common surprises while you build toward 3–6 months of essentials.",
			},
			{
				ID:          "saving-post-3",
				Question:    "Where should an emergency fund live?",
				Options:     []string{"A. In your everyday spending account", "B. In cash under the mattress", "C. In a separate, easy-access savings account", "D. In stocks for growth"},
				AnswerIndex: idx(2),
				Explanation: "Separate so you don't spend it by accident, accessible so it's there within a day when life happens.",
			},
			{
				ID:          "saving-post-4",
				Question:    "Which savings goal is most likely to succeed?",
				Options:     []string{"A. 'Save more money'", "B. 'Stop wasting money'", "C. '$600 for flights by June'", "D. 'Be better with money'"},
				AnswerIndex: idx(2),
				Explanation: "A number, a date, and a name turn a wish into a monthly amount you can actually act on.",
			},
		},
		Completion: "Saving done! Small, automatic, and named — that's the whole secret. " +
			"Ask me anything about what we covered, or head back to the menu.",
	}
}

func bankingLesson() Lesson {
	return Lesson{
		ID:    "banking",
		Title: "Bank Accounts & Fees",
		Introduction: "This lesson is about bank accounts — the plumbing of your money life. " +
			"Boring plumbing, until it leaks fees.",
		PreTestIntro: "A few warm-up questions to see where you stand.",
		PreTest: []PreTestItem{
			{
				ID:       "banking-pre-1",
				Question: "Which account is designed for everyday spending?\nA. Checking account\nB. Savings account\nC. Certificate of deposit",
				Options:  []string{"A. Checking account", "B. Savings account", "C. Certificate of deposit"},
				Answer:   "A",
			},
			{
				ID:           "banking-pre-2",
				Question:     "Have you ever been charged a bank fee you didn't expect? What happened?",
				MentorAnswer: "You're not alone — overdraft and maintenance fees catch almost everyone once. The goal after this lesson is: never twice.",
			},
			{
				ID:          "banking-pre-3",
				Question:    "True or false: all bank accounts charge a monthly fee.",
				Options:     []string{"True", "False"},
				AnswerIndex: idx(1),
			},
		},
		PreTestComplete: "Warm-up complete — on to the plumbing.",
		Topics: []Topic{
			{
				ID:    "banking-account-types",
				Title: "Checking vs. Savings",
				Body: "A checking account is for money in motion: income lands there, bills and card payments leave from there. " +
					"A savings account is for money at rest — it earns some interest and sits a step away from temptation. " +
					"Most people need exactly one of each to start.",
				Analogy:            "Checking is your kitchen counter: everything passes across it. Savings is the pantry: stocked on purpose, raided rarely.",
				DiscussionQuestion: "Does your money currently have a 'pantry', or does everything live on the counter?",
			},
			{
				ID:    "banking-fees",
				Title: "The Fee Trap",
				Body: "Common fees: monthly maintenance (often waived with direct deposit or a minimum balance), " +
					"overdraft fees when you spend more than you have, and out-of-network ATM charges. " +
					"Every one of them is avoidable — by choosing the right account, turning off overdraft coverage, and knowing your bank's ATM map.",
				Scenario: "Sam paid $12/month maintenance for two years — $288 — because he never set up direct deposit, " +
					"which would have waived it. One ten-minute form, $144 a year.",
				DiscussionQuestion: "Do you know, right now, what fees your own account can charge you?",
			},
			{
				ID:    "banking-interest",
				Title: "Making the Bank Pay You",
				Body: "High-yield savings accounts pay meaningfully more interest than standard ones for the same zero effort. " +
					"Rates change, so compare occasionally. Interest won't make you rich — but it's free money for a form you fill in once.",
				DiscussionQuestion: "If your savings earned 4% instead of 0.01%, what would that be worth to you in a year?",
			},
		},
		PostTestIntro: "Quick check before you graduate from plumbing school.",
		PostTest: []PostTestItem{
			{
				ID:          "banking-post-1",
				Question:    "Everyday spending money belongs in a…",
				Options:     []string{"A. Savings account", "B. Checking account", "C. Retirement account", "D. Safe deposit box"},
				AnswerIndex: idx(1),
				Explanation: "Checking accounts are built for money in motion — deposits, bills, and card payments.",
			},
			{
				ID:          "banking-post-2",
				Question:    "An overdraft fee is charged when…",
				Options:     []string{"A. You save too much", "B. You spend more than your balance", "C. You use your own bank's ATM", "D. You close an account"},
				AnswerIndex: idx(1),
				Explanation: "Spending past your balance triggers overdraft fees. Turning off overdraft coverage makes the card decline instead — free.",
			},
			{
				ID:          "banking-post-3",
				Question:    "Monthly maintenance fees are often waived if you…",
				Options:     []string{"A. Ask nicely once", "B. Set up direct deposit or keep a minimum balance", "C. Visit a branch monthly", "D. Use the mobile app"},
				AnswerIndex: idx(1),
				Explanation: "Most banks waive maintenance fees for direct deposit or a minimum balance — check your account's specific rule.",
			},
			{
				ID:          "banking-post-4",
				Question:    "A high-yield savings account mainly offers…",
				Options:     []string{"A. Higher interest on the same savings", "B. Free stocks", "C. Unlimited ATM use", "D. A better debit card"},
				AnswerIndex: idx(0),
				Explanation: "Same money, same safety, more interest. It's the easiest upgrade in personal finance.",
			},
		},
		Completion: "Banking basics complete — may your fees be zero and your interest compound. " +
			"Ask a follow-up question, or return to the menu whenever you're ready.",
	}
}

func creditLesson() Lesson {
	return Lesson{
		ID:    "credit",
		Title: "Credit Scores & Cards",
		Introduction: "Credit: the most misunderstood number in your financial life. " +
			"Let's demystify what a credit score is, what moves it, and how to make a credit card work for you instead of on you.",
		PreTestIntro: "First, the warm-up. No pressure — wrong guesses teach me where to focus.",
		PreTest: []PreTestItem{
			{
				ID:       "credit-pre-1",
				Question: "What is a credit score mainly used for?\nA. Measuring your income\nB. Predicting how reliably you repay borrowed money\nC. Tracking your spending habits",
				Options:  []string{"A. Measuring your income", "B. Predicting how reliably you repay borrowed money", "C. Tracking your spending habits"},
				Answer:   "B",
			},
			{
				ID:           "credit-pre-2",
				Question:     "What's one thing you've heard about credit scores that you're not sure is true?",
				MentorAnswer: "Great — credit folklore is everywhere. Keep that one in mind and see if this lesson confirms or busts it.",
			},
			{
				ID:          "credit-pre-3",
				Question:    "True or false: carrying a credit card balance month to month improves your score.",
				Options:     []string{"True", "False"},
				AnswerIndex: idx(1),
			},
			{
				ID:       "credit-pre-4",
				Question: "Which action hurts a credit score the most?\nA. Checking your own score\nB. Missing payments\nC. Having no credit card",
				Options:  []string{"A. Checking your own score", "B. Missing payments", "C. Having no credit card"},
				Answer:   "B",
			},
		},
		PreTestComplete: "Warm-up done. Time to separate credit facts from credit folklore.",
		Topics: []Topic{
			{
				ID:    "credit-score-inputs",
				Title: "What Moves the Score",
				Body: "The two heavyweights are payment history (did you pay on time, every time?) and utilization " +
					"(how much of your available credit you're using — keep it under about 30%). " +
					"Length of history, new applications, and credit mix play smaller parts. " +
					"On time + low utilization covers most of the game.",
				Analogy: "Your credit score is like a reputation at a library: return books on time for years and they'll lend you anything. " +
					"One long-overdue book is remembered far longer than a hundred punctual returns.",
				DiscussionQuestion: "Which do you think is easier to control starting today — payment history or utilization?",
			},
			{
				ID:    "credit-card-use",
				Title: "Using a Card Without Getting Used",
				Body: "The winning pattern is dull: put routine purchases on the card, pay the statement balance in full every month, " +
					"never spend money you don't already have. Paid in full, a card gives you fraud protection, a credit history, " +
					"and sometimes rewards — and the interest rate becomes irrelevant.",
				Scenario: "Ana autopays her full statement balance and puts only groceries and fuel on her card. " +
					"Her score crossed 750 in two years without paying a cent of interest.",
				DiscussionQuestion: "What would you put on a credit card if the rule was 'only things already in my budget'?",
			},
			{
				ID:    "credit-interest",
				Title: "The Real Cost of Minimum Payments",
				Body: "Pay only the minimum and interest compounds against you — a $1,000 balance at 24% APR " +
					"takes years to clear and can cost hundreds in interest. The minimum payment is the lender's favorite number, not yours. " +
					"If you carry a balance, attack it hard and stop adding to it.",
				DiscussionQuestion: "Why do you think lenders set minimum payments so low?",
			},
		},
		PostTestIntro: "Show me what stuck — final check on credit.",
		PostTest: []PostTestItem{
			{
				ID:          "credit-post-1",
				Question:    "The biggest factor in a credit score is…",
				Options:     []string{"A. Your salary", "B. Payment history", "C. Number of cards", "D. Your bank's size"},
				AnswerIndex: idx(1),
				Explanation: "Paying on time, every time, is the single most important input. Income isn't part of the score at all.",
			},
			{
				ID:          "credit-post-2",
				Question:    "Keeping utilization healthy means using roughly…",
				Options:     []string{"A. 100% of your limit", "B. 90% of your limit", "C. Under about 30% of your limit", "D. Exactly 50% of your limit"},
				AnswerIndex: idx(2),
				Explanation: "Low utilization signals you don't depend on borrowed money. Under ~30% is the common guideline.",
			},
			{
				ID:          "credit-post-3",
				Question:    "The best way to use a credit card is to…",
				Options:     []string{"A. Carry a small balance for the score", "B. Pay the statement balance in full monthly", "C. Only pay the minimum", "D. Max it out and pay it off yearly"},
				AnswerIndex: idx(1),
				Explanation: "Paying in full avoids all interest and still builds history. Carrying a balance helps only the lender.",
			},
			{
				ID:          "credit-post-4",
				Question:    "Minimum payments are designed to…",
				Options:     []string{"A. Clear your debt quickly", "B. Maximize the interest you pay over time", "C. Protect your score", "D. Reward loyalty"},
				AnswerIndex: idx(1),
				Explanation: "Minimums stretch repayment for years, which maximizes interest income for the lender.",
			},
			{
				ID:          "credit-post-5",
				Question:    "Checking your own credit score…",
				Options:     []string{"A. Lowers it slightly", "B. Has no effect on it", "C. Raises it", "D. Freezes your credit"},
				AnswerIndex: idx(1),
				Explanation: "Self-checks are 'soft' inquiries and never hurt your score. Check as often as you like.",
			},
		},
		Completion: "Credit, demystified: pay on time, keep utilization low, pay in full. " +
			"That's 90% of a great score. Questions welcome, or head back to the menu.",
	}
}

func debtLesson() Lesson {
	return Lesson{
		ID:    "debt",
		Title: "Managing Debt",
		Introduction: "Debt isn't a moral failing — it's a math problem with an emotional coating. " +
			"Today we'll learn how to read the math and pick a payoff plan you can actually stick to.",
		PreTestIntro: "Warm-up time. Answer with your gut; we'll refine from there.",
		PreTest: []PreTestItem{
			{
				ID:       "debt-pre-1",
				Question: "Which debt usually has the highest interest rate?\nA. Mortgage\nB. Credit card balance\nC. Student loan",
				Options:  []string{"A. Mortgage", "B. Credit card balance", "C. Student loan"},
				Answer:   "B",
			},
			{
				ID:           "debt-pre-2",
				Question:     "What feels harder about paying off debt: the math or the motivation?",
				MentorAnswer: "That tension is exactly why two payoff methods exist — one optimizes math, the other optimizes motivation. We'll cover both.",
			},
			{
				ID:          "debt-pre-3",
				Question:    "True or false: all debt is bad and should be avoided at any cost.",
				Options:     []string{"True", "False"},
				AnswerIndex: idx(1),
			},
		},
		PreTestComplete: "Good. Now let's turn that debt pile into an ordered list.",
		Topics: []Topic{
			{
				ID:    "debt-good-bad",
				Title: "Not All Debt Is Equal",
				Body: "Debt that buys an appreciating asset or higher earning power (a sensible mortgage, some education) can be a tool. " +
					"Debt that finances consumption at high interest (card balances, payday loans) is a leak. " +
					"The first question for any debt: what rate, and what did it buy?",
				Analogy:            "Debt is like cholesterol — there's a kind that builds and a kind that clogs. You manage them differently.",
				DiscussionQuestion: "What's the highest interest rate you're currently paying on anything?",
			},
			{
				ID:    "debt-avalanche-snowball",
				Title: "Avalanche vs. Snowball",
				Body: "Two classic payoff orders. Avalanche: pay minimums on everything, throw every spare dollar at the highest-rate debt — " +
					"mathematically cheapest. Snowball: attack the smallest balance first for a quick win — psychologically strongest. " +
					"The best method is whichever one you'll still be following in six months.",
				Scenario: "Priya had three debts: $400 at 8%, $2,000 at 22%, $5,000 at 6%. Avalanche said start with the 22% card. " +
					"But she started snowball-style with the $400 — cleared it in one month, felt unstoppable, then switched to the 22% card with momentum.",
				DiscussionQuestion: "Are you more motivated by saving the most money or by crossing things off a list?",
			},
			{
				ID:    "debt-traps",
				Title: "Traps That Keep You Stuck",
				Body: "Payday loans, 'buy now pay later' stacking, and paying one card with another all share a shape: " +
					"they trade a small relief today for a bigger hole tomorrow. If a product's main pitch is how easy it is, " +
					"read the rate twice.",
				DiscussionQuestion: "Why do you think 'buy now, pay later' is offered at checkout rather than before you shop?",
			},
		},
		PostTestIntro: "Final check — let's see the payoff plan thinking in action.",
		PostTest: []PostTestItem{
			{
				ID:          "debt-post-1",
				Question:    "The avalanche method pays off debts in order of…",
				Options:     []string{"A. Smallest balance first", "B. Highest interest rate first", "C. Oldest debt first", "D. Largest balance first"},
				AnswerIndex: idx(1),
				Explanation: "Highest rate first minimizes total interest paid — the mathematically optimal order.",
			},
			{
				ID:          "debt-post-2",
				Question:    "The snowball method's main advantage is…",
				Options:     []string{"A. It's cheapest mathematically", "B. Quick wins keep you motivated", "C. Lenders prefer it", "D. It improves your score fastest"},
				AnswerIndex: idx(1),
				Explanation: "Clearing small balances early builds momentum — and a plan you stick to beats a perfect plan you abandon.",
			},
			{
				ID:          "debt-post-3",
				Question:    "Which is usually the most expensive way to borrow?",
				Options:     []string{"A. A payday loan", "B. A mortgage", "C. A student loan", "D. A car loan"},
				AnswerIndex: idx(0),
				Explanation: "Payday loans can carry triple-digit effective rates — the clearest example of clogging debt.",
			},
			{
				ID:          "debt-post-4",
				Question:    "Before choosing a payoff strategy, the first thing to list for each debt is…",
				Options:     []string{"A. The lender's name", "B. The monthly due date", "C. The balance and interest rate", "D. The original purchase"},
				AnswerIndex: idx(2),
				Explanation: "Balance and rate are the two numbers both avalanche and snowball need. Everything starts from that list.",
			},
		},
		Completion: "Debt lesson complete. List your debts, pick an order, automate the attack. " +
			"Ask me anything, or head back to the menu for more.",
	}
}

func incomeLesson() Lesson {
	return Lesson{
		ID:    "income",
		Title: "Paychecks & Taxes",
		Introduction: "Ever looked at a payslip and wondered where a chunk of your money went before you ever saw it? " +
			"This lesson decodes gross pay, net pay, and the deductions in between.",
		PreTestIntro: "A short warm-up before we dissect a payslip.",
		PreTest: []PreTestItem{
			{
				ID:       "income-pre-1",
				Question: "Net pay is…\nA. Pay before any deductions\nB. Pay after deductions\nC. Your hourly rate",
				Options:  []string{"A. Pay before any deductions", "B. Pay after deductions", "C. Your hourly rate"},
				Answer:   "B",
			},
			{
				ID:           "income-pre-2",
				Question:     "When you think about taxes coming out of a paycheck, what do you picture that money paying for?",
				MentorAnswer: "Good reflection — payroll taxes fund things like public pensions, healthcare programs, roads, and schools. Knowing where it goes makes the payslip less mysterious.",
			},
			{
				ID:          "income-pre-3",
				Question:    "True or false: if a raise pushes you into a higher tax bracket, you can take home less money overall.",
				Options:     []string{"True", "False"},
				AnswerIndex: idx(1),
			},
		},
		PreTestComplete: "Nice. Let's read a payslip like a pro.",
		Topics: []Topic{
			{
				ID:    "income-gross-net",
				Title: "Gross vs. Net",
				Body: "Gross pay is what your employer agreed to pay. Net pay is what lands in your account " +
					"after taxes and other deductions. Budgets, rent decisions, and savings goals should all be built on net — " +
					"the only number you can actually spend.",
				Analogy:            "Gross pay is the whole pizza the menu promised; net pay is what reaches your table after the kitchen takes its slices. Plan dinner around the slices you get.",
				DiscussionQuestion: "Do you know your own net-to-gross ratio, even roughly?",
			},
			{
				ID:    "income-brackets",
				Title: "How Tax Brackets Actually Work",
				Body: "Brackets are marginal: each rate applies only to the income inside that band, not to all of it. " +
					"Moving into a higher bracket means only the extra dollars are taxed at the higher rate — " +
					"a raise never shrinks your take-home pay.",
				Scenario: "Omar feared a $2,000 raise because it 'pushed him into the 30% bracket'. " +
					"Only the amount above the bracket line was taxed at 30%; the rest of his income kept its old rates. His take-home still rose by well over $1,000.",
				DiscussionQuestion: "Where do you think the 'a raise can cost you money' myth comes from?",
			},
			{
				ID:    "income-deductions",
				Title: "Reading the Deductions",
				Body: "Typical payslip lines: income tax withholding, social insurance contributions, " +
					"and sometimes retirement contributions or health premiums. Pre-tax retirement contributions reduce taxable income — " +
					"money your future self keeps, partly funded by a smaller tax bill today.",
				DiscussionQuestion: "Which line on your payslip have you never actually looked up?",
			},
		},
		PostTestIntro: "Payslip check — final questions.",
		PostTest: []PostTestItem{
			{
				ID:          "income-post-1",
				Question:    "Which number should your budget be built on?",
				Options:     []string{"A. Gross pay", "B. Net pay", "C. Hourly rate", "D. Annual salary before tax"},
				AnswerIndex: idx(1),
				Explanation: "Net pay is what actually arrives. Budgets built on gross pay overspend by the size of the deductions.",
			},
			{
				ID:          "income-post-2",
				Question:    "With marginal tax brackets, a higher rate applies to…",
				Options:     []string{"A. All of your income", "B. Only income above that bracket's line", "C. Your savings", "D. Your employer's profit"},
				AnswerIndex: idx(1),
				Explanation: "Only the dollars inside each band pay that band's rate. A raise always increases take-home pay.",
			},
			{
				ID:          "income-post-3",
				Question:    "Pre-tax retirement contributions…",
				Options:     []string{"A. Increase your tax bill", "B. Reduce taxable income now and grow for later", "C. Are a type of tax", "D. Replace an emergency fund"},
				AnswerIndex: idx(1),
				Explanation: "They lower this year's taxable income while building future savings — a double win worth checking on any payslip.",
			},
			{
				ID:          "income-post-4",
				Question:    "The difference between gross and net pay is…",
				Options:     []string{"A. Overtime", "B. Bonuses", "C. Taxes and deductions", "D. Bank fees"},
				AnswerIndex: idx(2),
				Explanation: "Deductions — taxes, social insurance, benefits — are the gap between the number on the offer letter and the number in your account.",
			},
		},
		Completion: "Paychecks decoded! Build on net, never fear a raise, and glance at those deduction lines. " +
			"Ask me a question, or return to the menu.",
	}
}

func investingLesson() Lesson {
	return Lesson{
		ID:    "investing",
		Title: "Investing First Steps",
		Introduction: "Last stop: investing — making your savings earn while you sleep. " +
			"No stock tips here, just the boring fundamentals that actually build wealth.",
		PreTestIntro: "One last warm-up. Gut answers are fine.",
		PreTest: []PreTestItem{
			{
				ID:       "investing-pre-1",
				Question: "Compound interest means…\nA. Interest paid only on your original deposit\nB. Interest earned on interest\nC. A bank fee",
				Options:  []string{"A. Interest paid only on your original deposit", "B. Interest earned on interest", "C. A bank fee"},
				Answer:   "B",
			},
			{
				ID:           "investing-pre-2",
				Question:     "What's the first word that comes to mind when you hear 'investing'?",
				MentorAnswer: "Whatever came to mind — thrilling or terrifying — good investing is mostly neither. It's patient and repetitive, which is great news for beginners.",
			},
			{
				ID:          "investing-pre-3",
				Question:    "True or false: you need to pick winning stocks to invest successfully.",
				Options:     []string{"True", "False"},
				AnswerIndex: idx(1),
			},
		},
		PreTestComplete: "Warm-up done — let's make compound interest work for you.",
		Topics: []Topic{
			{
				ID:    "investing-compound",
				Title: "Compound Growth",
				Body: "Compounding means your returns start earning returns. Time matters more than amount: " +
					"money invested in your twenties can outgrow much larger sums invested in your forties. " +
					"The practical rule: start small, start now, don't interrupt it.",
				Analogy: "Compounding is a snowball rolling downhill: the first few turns barely grow it, " +
					"but every layer makes the next layer bigger. The hill's length — time — does most of the work.",
				DiscussionQuestion: "What would 'starting embarrassingly small, today' look like for you?",
			},
			{
				ID:    "investing-diversification",
				Title: "Don't Pick Heroes — Diversify",
				Body: "Picking individual winning stocks is a game even professionals mostly lose. " +
					"Broad index funds buy a slice of the whole market in one purchase: instant diversification, low fees, no hero-picking. " +
					"For most beginners, a boring index fund is the sophisticated choice.",
				Scenario: "Two friends started in the same year: Kai traded hot stocks and spent hours daily watching charts; " +
					"Rosa auto-invested into an index fund monthly and checked it quarterly. A decade later Rosa was ahead — and had her evenings back.",
				DiscussionQuestion: "Why do you think 'boring' strategies are so hard for people to stick with?",
			},
			{
				ID:    "investing-risk",
				Title: "Risk, Time, and Sleep",
				Body: "Markets swing; that's the price of long-term growth. Money you need within a few years doesn't belong in stocks — " +
					"that's what savings are for. Money you won't touch for a decade can ride the swings. " +
					"Match the investment to the timeline, and never invest money whose loss would cost you sleep or rent.",
				DiscussionQuestion: "What timeline separates 'savings money' from 'investing money' in your life?",
			},
		},
		PostTestIntro: "Final check of the whole course — investing edition.",
		PostTest: []PostTestItem{
			{
				ID:          "investing-post-1",
				Question:    "Compound interest is powerful mainly because of…",
				Options:     []string{"A. Luck", "B. Time", "C. Large deposits", "D. Low taxes"},
				AnswerIndex: idx(1),
				Explanation: "Returns earning returns needs runway. Starting early beats starting big.",
			},
			{
				ID:          "investing-post-2",
				Question:    "For a beginner, broad index funds offer…",
				Options:     []string{"A. Guaranteed returns", "B. Diversification at low cost", "C. Insider information", "D. No risk at all"},
				AnswerIndex: idx(1),
				Explanation: "One purchase spreads your money across the whole market with minimal fees — no hero-picking required.",
			},
			{
				ID:          "investing-post-3",
				Question:    "Money you'll need next year belongs in…",
				Options:     []string{"A. Stocks", "B. A savings account", "C. Cryptocurrency", "D. Collectibles"},
				AnswerIndex: idx(1),
				Explanation: "Short timelines can't absorb market swings. Stocks are for money with years of runway.",
			},
			{
				ID:          "investing-post-4",
				Question:    "The habit most correlated with beginner investing success is…",
				Options:     []string{"A. Daily trading", "B. Following market news closely", "C. Automatic, regular contributions left alone", "D. Buying dips aggressively"},
				AnswerIndex: idx(2),
				Explanation: "Automated contributions remove emotion and timing from the equation — consistency is the edge.",
			},
			{
				ID:          "investing-post-5",
				Question:    "A sensible rule for how much to invest is…",
				Options:     []string{"A. Everything you have", "B. Only money you won't need for years", "C. Borrowed money for leverage", "D. Your emergency fund"},
				AnswerIndex: idx(1),
				Explanation: "Invest with long-timeline money only. The emergency fund stays in savings, doing its own quiet job.",
			},
		},
		Completion: "You've finished the whole money-skills course — congratulations! " +
			"Start small, automate everything, and let time do the heavy lifting. " +
			"Ask me anything you like, or head back to the menu to revisit a lesson.",
	}
}
