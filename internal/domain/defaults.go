package domain

// SiteContentDefaults is the landing-page content used wherever the content
// store has nothing to say. Every field the page renders has a value here so
// the site can come up with the store down.
func SiteContentDefaults() HomeContent {
	return HomeContent{
		BrandName:       "Celebration Garden",
		HeroTitle:       "Celebration Garden",
		HeroSubtitle:    "A Private Garden Estate for Unforgettable Events",
		HeroDescription: "Weddings, galas and celebrations amid five acres of manicured lawns and rose gardens.",
		AboutText:       "Celebration Garden is a family-run garden estate hosting weddings, corporate galas and private celebrations. Our Grand Pavilion seats up to 300 guests; the Secret Rose Garden holds intimate ceremonies of up to 150.",
		Address: Address{
			Line1:   "Celebration Garden, Opposite Parsavnath Sterling Appartments",
			Line2:   "Mohan Nagar, Ghaziabad",
			Line3:   "Pincode: 201001",
			Country: "Uttar Pradesh, India",
		},
		PhoneNumber:     "+91 9136222000",
		WhatsappPhone:   "+91 9136222000",
		InstagramURL:    "",
		FooterText:      "",
		MetaTitle:       "Celebration Garden | Garden Estate Event Venue",
		MetaDescription: "Host your wedding or celebration at Celebration Garden, a private garden estate with manicured lawns, a grand pavilion and a dedicated event concierge.",
		FAQs: []FAQItem{
			{
				Category: "General",
				Question: "What is the maximum capacity of Celebration Garden?",
				Answer:   "Our Grand Pavilion can comfortably host up to 300 guests for a seated banquet, while our intimate Secret Rose Garden is ideal for ceremonies of up to 150 guests.",
			},
			{
				Category: "General",
				Question: "Is there on-site parking available for guests?",
				Answer:   "Yes, we provide complimentary valet parking for all guests. Our estate features a discreet, secure parking area with a capacity for 120 vehicles.",
			},
			{
				Category: "Venue",
				Question: "What happens if it rains on my wedding day?",
				Answer:   "Our Grand Pavilion serves as a breathtaking indoor backup for outdoor ceremonies. Its floor-to-ceiling glass ensures you still feel surrounded by the garden while staying perfectly dry.",
			},
			{
				Category: "Venue",
				Question: "Are we allowed to bring our own external vendors?",
				Answer:   "While we have a curated list of partners, we do welcome outside vendors. They must be licensed, insured, and approved by our estate management team 60 days prior to the event.",
			},
			{
				Category: "Catering",
				Question: "Can you accommodate specific dietary requirements?",
				Answer:   "Absolutely. Our executive culinary team specializes in bespoke menus, including vegan, gluten-free, Kosher, and Halal options. We conduct personal tasting sessions for every couple.",
			},
			{
				Category: "Booking",
				Question: "What is your cancellation and rescheduling policy?",
				Answer:   "We offer a flexible rescheduling policy up to 9 months before your date. For cancellations, the initial reservation deposit is non-refundable, but can often be applied to a future date within 12 months.",
			},
		},
		FAQCategories: []string{"General", "Venue", "Catering", "Booking"},
	}
}
