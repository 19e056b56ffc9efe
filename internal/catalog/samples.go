package catalog

// Sample catalog served when TMDB is unreachable or unconfigured, so the
// browse surface always has something to render. The HTTP layer decides
// when to substitute it (and marks the response degraded); this package
// never falls back silently.

// SampleMovies is the built-in fallback row.
var SampleMovies = []Item{
	{
		Kind:         KindMovie,
		ID:           1184918,
		Title:        "The Wild Robot",
		Overview:     "After a shipwreck, an intelligent robot called Roz is stranded on an uninhabited island. To survive the harsh environment, Roz bonds with the island's animals and cares for an orphaned baby goose.",
		PosterPath:   "/wTnV3PCVW5O92JMrFvvrRcV39RU.jpg",
		BackdropPath: "/4zlOPT9CrtIzs0f3IGMGnzKMIFN.jpg",
		Date:         "2024-09-12",
		Rating:       8.4,
		VoteCount:    4200,
		Popularity:   850,
		GenreIDs:     []int{16, 878, 10751},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           912649,
		Title:        "Venom: The Last Dance",
		Overview:     "Eddie and Venom are on the run. Hunted by both of their worlds and with the net closing in, the duo are forced into a devastating decision that will bring the curtains down on Venom and Eddie's last dance.",
		PosterPath:   "/aosm8NMQ3UyoBVpSxyimorCQykC.jpg",
		BackdropPath: "/3V4kLQg0kSqPLctI5ziYWabAZYF.jpg",
		Date:         "2024-10-22",
		Rating:       6.7,
		VoteCount:    2300,
		Popularity:   780,
		GenreIDs:     []int{28, 878, 12},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           1034541,
		Title:        "Terrifier 3",
		Overview:     "Art the Clown is set to unleash chaos on the unsuspecting residents of Miles County as they peacefully drift off to sleep on Christmas Eve.",
		PosterPath:   "/63xYQj1BwRFielxsBDXvHIJyXVm.jpg",
		BackdropPath: "/xlkclSE4aq7r3JsFIJRgs21zUew.jpg",
		Date:         "2024-10-09",
		Rating:       7.0,
		VoteCount:    1800,
		Popularity:   720,
		GenreIDs:     []int{27, 53},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           933260,
		Title:        "The Substance",
		Overview:     "A fading celebrity decides to use a black market drug, a cell-replicating substance that temporarily creates a younger, better version of herself.",
		PosterPath:   "/lqoMzCcZYEFK729d6qzt349fB4o.jpg",
		BackdropPath: "/t98L9uphqBSNn2Mkvdm3xSFCQyi.jpg",
		Date:         "2024-09-07",
		Rating:       7.3,
		VoteCount:    2800,
		Popularity:   650,
		GenreIDs:     []int{18, 27, 878},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           1062807,
		Title:        "Apartment 7A",
		Overview:     "A young dancer dreams of stardom, but a dark encounter with an evil force thrusts her into a nightmare she must escape before it consumes her.",
		PosterPath:   "/oLkGaEoMiRYjLnSJfAoFMLYdTKA.jpg",
		BackdropPath: "/dfMFYHslnmUBxKRXxmasJLBSNDi.jpg",
		Date:         "2024-09-26",
		Rating:       6.1,
		VoteCount:    800,
		Popularity:   480,
		GenreIDs:     []int{27, 53, 18},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           698687,
		Title:        "Transformers One",
		Overview:     "The untold origin story of Optimus Prime and Megatron, better known as sworn enemies, but once were friends bonded like brothers who changed the fate of Cybertron forever.",
		PosterPath:   "/iRCbtdCMsN0JkEtgkaT30e2EoLo.jpg",
		BackdropPath: "/jbwYaoYWUwPEGCzOzAQu8BjTVBs.jpg",
		Date:         "2024-09-11",
		Rating:       8.0,
		VoteCount:    1500,
		Popularity:   550,
		GenreIDs:     []int{16, 878, 12, 28},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           945961,
		Title:        "Alien: Romulus",
		Overview:     "While scavenging the deep ends of a derelict space station, a group of young space colonizers come face to face with the most terrifying life form in the universe.",
		PosterPath:   "/b33nnKl1GSFbao4l3fZDDqsMSF6.jpg",
		BackdropPath: "/9SSEUrSqhljBMzRe4aBTh17wUFP.jpg",
		Date:         "2024-08-13",
		Rating:       7.2,
		VoteCount:    3200,
		Popularity:   600,
		GenreIDs:     []int{27, 878},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           573435,
		Title:        "Bad Boys: Ride or Die",
		Overview:     "After their late police captain is linked to drug cartels, Bad Boys Mike Lowrey and Marcus Burnett investigate to clear his name.",
		PosterPath:   "/nP6RliHjxsz4irTKsxe8FRhKZYl.jpg",
		BackdropPath: "/tncbMvfV0V07UZozXdBEY0inquB.jpg",
		Date:         "2024-06-05",
		Rating:       7.6,
		VoteCount:    2900,
		Popularity:   520,
		GenreIDs:     []int{28, 80, 35},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           823464,
		Title:        "Godzilla x Kong: The New Empire",
		Overview:     "Following their fruit monumental clash, Godzilla and Kong must reunite against a colossal undiscovered threat hidden within our world.",
		PosterPath:   "/z1p34vh7dEOnLDmyCrlUVLuoDzd.jpg",
		BackdropPath: "/xRd1eJIDe7JHO5u4gtEYwGn5wtf.jpg",
		Date:         "2024-03-27",
		Rating:       7.1,
		VoteCount:    4500,
		Popularity:   490,
		GenreIDs:     []int{28, 878, 12},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           693134,
		Title:        "Dune: Part Two",
		Overview:     "Follow the mythic journey of Paul Atreides as he unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.",
		PosterPath:   "/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
		BackdropPath: "/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
		Date:         "2024-02-27",
		Rating:       8.2,
		VoteCount:    6800,
		Popularity:   700,
		GenreIDs:     []int{878, 12, 18},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           1078605,
		Title:        "Weapons",
		Overview:     "An action thriller following multiple intersecting storylines in a dangerous underworld.",
		PosterPath:   "/yTLxCMpMFxRaLGHa8LjduXJTob.jpg",
		BackdropPath: "/fNylhsaQjgenBJBh1kGsmVGjTFG.jpg",
		Date:         "2025-04-11",
		Rating:       7.0,
		VoteCount:    200,
		Popularity:   400,
		GenreIDs:     []int{28, 53},
		Language:     "en",
	},
	{
		Kind:         KindMovie,
		ID:           1241982,
		Title:        "Moana 2",
		Overview:     "After receiving an unexpected call from her wayfinding ancestors, Moana journeys alongside Maui and a new crew to the far seas of Oceania.",
		PosterPath:   "/yh64qw9mgXBvlaWDi7Q9tpUBAvH.jpg",
		BackdropPath: "/tElnmtQ6yz1PjN1kePNl8yMB2IQ.jpg",
		Date:         "2024-11-21",
		Rating:       7.0,
		VoteCount:    1400,
		Popularity:   680,
		GenreIDs:     []int{16, 12, 10751},
		Language:     "en",
	},
}

// SampleHero is the fallback hero banner item.
var SampleHero = Item{
	Kind:         KindMovie,
	ID:           693134,
	Title:        "Dune: Part Two",
	Overview:     "Follow the mythic journey of Paul Atreides as he unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family. Facing a choice between the love of his life and the fate of the known universe, he endeavors to prevent a terrible future only he can foresee.",
	PosterPath:   "/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
	BackdropPath: "/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
	Date:         "2024-02-27",
	Rating:       8.2,
	VoteCount:    6800,
	Popularity:   700,
	GenreIDs:     []int{878, 12, 18},
	Language:     "en",
}

// SampleByID returns the sample item with the given provider id, falling
// back to the hero item when unknown — the browse surface never 404s in
// degraded mode.
func SampleByID(id int) Item {
	for _, m := range SampleMovies {
		if m.ID == id {
			return m
		}
	}
	return SampleHero
}
