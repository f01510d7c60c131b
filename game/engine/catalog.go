package engine

// GenerateBoard returns the fixed 24-tile board. Tile ids equal their
// board index and position 0 is always the GO tile. The function is
// pure: repeated calls produce identical output.
func GenerateBoard() []Tile {
	return []Tile{
		{
			ID:          0,
			Name:        "GO",
			Category:    TileGo,
			Description: "Collect your salary as you pass GO!",
			Effect:      EffectSpec{Kind: EffectNone},
		},
		{
			ID:          1,
			Name:        "Side Hustle",
			Category:    TileIncome,
			Description: "Earn extra income from a side gig!",
			Effect:      EffectSpec{Kind: EffectCashCredit, Amount: 200},
		},
		{
			ID:          2,
			Name:        "Freelance Gig",
			Category:    TileIncome,
			Description: "You got a freelance project!",
			Effect:      EffectSpec{Kind: EffectCashCredit, Amount: 300},
		},
		{
			ID:          3,
			Name:        "Car Repair",
			Category:    TileExpense,
			Description: "Your car needs urgent repairs!",
			Effect:      EffectSpec{Kind: EffectCashDebit, Amount: 300},
		},
		{
			ID:          4,
			Name:        "Medical Bills",
			Category:    TileExpense,
			Description: "Unexpected medical expenses!",
			Effect:      EffectSpec{Kind: EffectCashDebit, Amount: 500},
		},
		{
			ID:          5,
			Name:        "Real Estate Investment",
			Category:    TileInvestment,
			Description: "Opportunity to invest in real estate!",
			Effect:      EffectSpec{Kind: EffectOpportunity},
		},
		{
			ID:          6,
			Name:        "Stock Market",
			Category:    TileInvestment,
			Description: "Opportunity to invest in stocks!",
			Effect:      EffectSpec{Kind: EffectOpportunity},
		},
		{
			ID:          7,
			Name:        "Market Crash",
			Category:    TileRisk,
			Description: "The market crashes! All investments lose value.",
			Effect:      EffectSpec{Kind: EffectMarketScale, Factor: CrashFactor},
		},
		{
			ID:          8,
			Name:        "Job Loss",
			Category:    TileRisk,
			Description: "You lost your job! No salary until you find a new one.",
			Effect:      EffectSpec{Kind: EffectSalaryLoss},
		},
		{
			ID:          9,
			Name:        "New Job Offer",
			Category:    TileOpportunity,
			Description: "You got a better job offer with higher salary!",
			Effect:      EffectSpec{Kind: EffectSalaryRaise, Rate: 0.2},
		},
		{
			ID:          10,
			Name:        "Business Opportunity",
			Category:    TileOpportunity,
			Description: "Chance to start your own business!",
			Effect:      EffectSpec{Kind: EffectOpportunity},
		},
		{
			ID:          11,
			Name:        "Tax Audit",
			Category:    TileEvent,
			Description: "You're being audited by the tax authorities!",
			Effect:      EffectSpec{Kind: EffectCashPenaltyRate, Rate: 0.1},
		},
		{
			ID:          12,
			Name:        "Rental Income",
			Category:    TileIncome,
			Description: "Collect rental income from your properties!",
			Effect:      EffectSpec{Kind: EffectCategoryCredit, Category: AssetRealEstate, PerHolding: 100},
		},
		{
			ID:          13,
			Name:        "Property Tax",
			Category:    TileExpense,
			Description: "Time to pay property taxes!",
			Effect:      EffectSpec{Kind: EffectCategoryDebit, Category: AssetRealEstate, PerHolding: 50},
		},
		{
			ID:          14,
			Name:        "Online Business",
			Category:    TileInvestment,
			Description: "Opportunity to invest in an online business!",
			Effect:      EffectSpec{Kind: EffectOpportunity},
		},
		{
			ID:          15,
			Name:        "Credit Card Debt",
			Category:    TileExpense,
			Description: "You've accumulated credit card debt!",
			Effect: EffectSpec{
				Kind:           EffectGrantLiability,
				LiabilityName:  "Credit Card",
				Amount:         1000,
				Rate:           18,
				MinimumPayment: 100,
			},
		},
		{
			ID:          16,
			Name:        "Dividend Payout",
			Category:    TileIncome,
			Description: "Your stocks pay dividends!",
			Effect:      EffectSpec{Kind: EffectCategoryCredit, Category: AssetStock, PerHolding: 75},
		},
		{
			ID:          17,
			Name:        "Home Renovation",
			Category:    TileExpense,
			Description: "Your home needs renovations!",
			Effect:      EffectSpec{Kind: EffectCashDebit, Amount: 600},
		},
		{
			ID:          18,
			Name:        "Financial Education",
			Category:    TileInvestment,
			Description: "Invest in your financial education!",
			Effect:      EffectSpec{Kind: EffectInvestmentOutlay, Amount: 200},
		},
		{
			ID:          19,
			Name:        "Inheritance",
			Category:    TileIncome,
			Description: "You received an inheritance!",
			Effect:      EffectSpec{Kind: EffectCashCredit, Amount: 1500},
		},
		{
			ID:          20,
			Name:        "Business Expansion",
			Category:    TileInvestment,
			Description: "Opportunity to expand your business!",
			Effect:      EffectSpec{Kind: EffectOpportunity},
		},
		{
			ID:          21,
			Name:        "Economic Boom",
			Category:    TileEvent,
			Description: "The economy is booming! All investment income increases.",
			Effect:      EffectSpec{Kind: EffectMarketScale, Factor: BoomFactor},
		},
		{
			ID:          22,
			Name:        "Loan Payment",
			Category:    TileExpense,
			Description: "Time to make loan payments!",
			Effect:      EffectSpec{Kind: EffectLoanPayments},
		},
		{
			ID:          23,
			Name:        "Cryptocurrency Investment",
			Category:    TileInvestment,
			Description: "Opportunity to invest in cryptocurrency!",
			Effect:      EffectSpec{Kind: EffectOpportunity},
		},
	}
}

// GenerateAssetCatalog returns the twelve fixed asset templates, three
// per category, each with Owned=0. Pure and deterministic.
func GenerateAssetCatalog() []Asset {
	return []Asset{
		// Real estate
		{ID: "asset-re-1", Name: "Small Apartment", Category: AssetRealEstate, Cost: 1000, CashFlow: 100},
		{ID: "asset-re-2", Name: "Duplex", Category: AssetRealEstate, Cost: 2000, CashFlow: 200},
		{ID: "asset-re-3", Name: "Commercial Property", Category: AssetRealEstate, Cost: 3000, CashFlow: 300},

		// Stocks
		{ID: "asset-stock-1", Name: "Tech Stocks", Category: AssetStock, Cost: 500, CashFlow: 25},
		{ID: "asset-stock-2", Name: "Dividend Stocks", Category: AssetStock, Cost: 800, CashFlow: 50},
		{ID: "asset-stock-3", Name: "Index Fund", Category: AssetStock, Cost: 1000, CashFlow: 40},

		// Businesses
		{ID: "asset-biz-1", Name: "Dropshipping Store", Category: AssetBusiness, Cost: 1200, CashFlow: 150},
		{ID: "asset-biz-2", Name: "Food Truck", Category: AssetBusiness, Cost: 2500, CashFlow: 300},
		{ID: "asset-biz-3", Name: "Software as a Service", Category: AssetBusiness, Cost: 4000, CashFlow: 500},

		// Side hustles
		{ID: "asset-side-1", Name: "Blog/YouTube Channel", Category: AssetSideHustle, Cost: 300, CashFlow: 30},
		{ID: "asset-side-2", Name: "Affiliate Marketing", Category: AssetSideHustle, Cost: 500, CashFlow: 60},
		{ID: "asset-side-3", Name: "Print on Demand", Category: AssetSideHustle, Cost: 700, CashFlow: 80},
	}
}
