package scraper

// Sites returns the boards that make up the combined ranking, in fetch order.
func Sites() []Site {
	return []Site{
		{
			Name:      "The Athletic",
			URL:       "https://theathletic.com/4307966/2023/03/29/nfl-draft-2023-prospect-rankings-board/",
			Selector:  ".fc-name",
			Extractor: AthleticExtractor{},
		},
		{
			Name:      "Daniel Jeremiah 4.0",
			URL:       "https://www.nfl.com/news/daniel-jeremiah-s-top-50-2023-nfl-draft-prospect-rankings-4-0",
			Selector:  ".nfl-o-ranked-item",
			Extractor: RankedItemExtractor{},
		},
		{
			Name:      "Bleacher Report",
			URL:       "https://bleacherreport.com/articles/10071212-2023-nfl-draft-big-board-br-nfl-scouting-depts-rankings-as-draft-nears",
			Selector:  "#slide1 p",
			Extractor: BigBoardExtractor{},
		},
	}
}
