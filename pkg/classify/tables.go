package classify

// tagGenres maps deals free-text tags to canonical genres.
var tagGenres = map[string]Genre{
	// Action
	"Action":                Action,
	"Action Roguelike":      Action,
	"Action RTS":            Action,
	"Action Games":          Action,
	"Character Action Game": Action,
	"Hack and Slash":        Action,
	"Beat 'em up":           Action,
	"Spectacle fighter":     Action,
	// Adventure
	"Adventure":                 Adventure,
	"Action-Adventure":          Adventure,
	"Choose Your Own Adventure": Adventure,
	"Point & Click":             Adventure,
	"Walking Simulator":         Adventure,
	"Visual Novel":              Adventure,
	"Interactive Fiction":       Adventure,
	// Casual
	"Casual":          Casual,
	"Family Friendly": Casual,
	"Wholesome":       Casual,
	"Cozy":            Casual,
	"Relaxing":        Casual,
	"Party Game":      Casual,
	"Party":           Casual,
	"Clicker":         Casual,
	"Idler":           Casual,
	// MMO
	"Massively Multiplayer": MMO,
	"MMORPG":                MMO,
	"MOBA":                  MMO,
	// Racing
	"Racing":         Racing,
	"Driving":        Racing,
	"Combat Racing":  Racing,
	"Automobile Sim": Racing,
	"Motocross":      Racing,
	"Motorbike":      Racing,
	"Bikes":          Racing,
	"ATV":            Racing,
	"Offroad":        Racing,
	// RPG
	"RPG":             RPG,
	"JRPG":            RPG,
	"Action RPG":      RPG,
	"Tactical RPG":    RPG,
	"Strategy RPG":    RPG,
	"CRPG":            RPG,
	"Party-Based RPG": RPG,
	"Dungeon Crawler": RPG,
	"Souls-like":      RPG,
	"RPGMaker":        RPG,
	// Simulation
	"Simulation":    Simulation,
	"Life Sim":      Simulation,
	"Farming Sim":   Simulation,
	"City Builder":  Simulation,
	"Colony Sim":    Simulation,
	"Management":    Simulation,
	"Tycoon games":  Simulation,
	"Medical Sim":   Simulation,
	"Job Simulator": Simulation,
	"Flight":        Simulation,
	"Space Sim":     Simulation,
	"Political Sim": Simulation,
	"God Game":      Simulation,
	"Hobby Sim":     Simulation,
	// Sports
	"Sports":              Sports,
	"Football (American)": Sports,
	"Basketball":          Sports,
	"Baseball":            Sports,
	"Football (Soccer)":   Sports,
	"Tennis":              Sports,
	"Hockey":              Sports,
	"Golf":                Sports,
	"Volleyball":          Sports,
	"Rugby":               Sports,
	"Cricket":             Sports,
	"Badminton":           Sports,
	"Boxing":              Sports,
	"Wrestling":           Sports,
	"Skateboarding":       Sports,
	"Snowboarding":        Sports,
	"Skiing":              Sports,
	"Cycling":             Sports,
	"BMX":                 Sports,
	"Skating":             Sports,
	// Strategy
	"Strategy":            Strategy,
	"Turn-Based Strategy": Strategy,
	"Turn-Based Tactics":  Strategy,
	"Real Time Tactics":   Strategy,
	"RTS":                 Strategy,
	"Grand Strategy":      Strategy,
	"4X":                  Strategy,
	"Tower Defense":       Strategy,
	"Tactical":            Strategy,
	"Wargame":             Strategy,
	// TPS
	"Third-Person Shooter": TPS,
	"Third Person":         TPS,
	// FPS
	"FPS":                FPS,
	"First-Person":       FPS,
	"Boomer Shooter":     FPS,
	"Arena Shooter":      FPS,
	"Hero Shooter":       FPS,
	"Extraction Shooter": FPS,
	"Looter Shooter":     FPS,
	// Platformer
	"Platformer":           Platformer,
	"2D Platformer":        Platformer,
	"3D Platformer":        Platformer,
	"Precision Platformer": Platformer,
	"Puzzle Platformer":    Platformer,
	"Metroidvania":         Platformer,
	// Fighting
	"Fighting":     Fighting,
	"2D Fighter":   Fighting,
	"3D Fighter":   Fighting,
	"Martial Arts": Fighting,
	// Arcade
	"Arcade":             Arcade,
	"Score Attack":       Arcade,
	"Bullet Hell":        Arcade,
	"Shoot 'Em Up":       Arcade,
	"Twin Stick Shooter": Arcade,
	"Top-Down Shooter":   Arcade,
	"Pinball":            Arcade,
	// Puzzle
	"Puzzle":        Puzzle,
	"Logic":         Puzzle,
	"Match 3":       Puzzle,
	"Sokoban":       Puzzle,
	"Hidden Object": Puzzle,
	"Maze":          Puzzle,
	"Escape Room":   Puzzle,
	// Music
	"Music":                             Music,
	"Rhythm":                            Music,
	"Music-Based Procedural Generation": Music,
	// Horror
	"Horror":               Horror,
	"Survival Horror":      Horror,
	"Psychological Horror": Horror,
}

// featureTags is the allow-list of descriptive deals tags kept as features.
var featureTags = newSet(
	"Puzzle", "Platformer", "Action", "Action-Adventure", "3D", "Stealth", "Atmospheric",
	"Cinematic", "Story Rich", "Adventure", "Family Friendly", "Strategy", "Casual",
	"Education", "Time Attack", "Pixel Graphics", "Cute", "Precision Platformer", "Parkour",
	"Difficult", "Time Management", "Rhythm", "Colorful", "2D", "Stylized", "2D Platformer",
	"Card Game", "Solitaire", "Shoot 'Em Up", "Side Scroller", "Spectacle fighter",
	"Puzzle Platformer", "Cartoon", "Hand-drawn", "Comic Book", "Cyberpunk", "Dystopian",
	"Destruction", "Sci-fi", "Futuristic", "War", "Post-apocalyptic", "Fantasy",
	"Text-Based", "Arcade", "Experimental", "America", "Football (American)", "Robots",
	"Minimalist", "Logic", "Relaxing", "Maze", "Party", "Board Game", "Real-Time",
	"Team-Based", "Competitive", "Controller", "Basketball", "Fast-Paced", "Funny",
	"eSports", "Free to Play", "Massively Multiplayer", "Tabletop", "Match 3",
	"Alternate History", "Military", "Physics", "Shooter", "Violent", "Combat",
	"Conversation", "Gun Customization", "Open World", "Narration", "Narrative", "Retro",
	"Score Attack", "Female Protagonist", "Action Roguelike", "Beat 'em up", "Cats",
	"Procedural Generation", "Real Time Tactics", "World War II", "RTS", "Isometric",
	"Realistic", "Top-Down", "Historical", "Tactical", "Co-op Campaign", "Exploration",
	"Medieval", "Dog", "Mystery", "Choose Your Own Adventure", "Visual Novel", "Dating Sim",
	"Romance", "Choices Matter", "Multiple Endings", "Anime", "Pool", "JRPG", "Turn-Based",
	"Party-Based RPG", "Turn-Based Combat", "Linear", "Old School", "Sequel", "RPGMaker",
	"Soundtrack", "Metroidvania", "Hidden Object", "Point & Click", "Horror", "Bullet Hell",
	"Roguelite", "Arena Shooter", "Top-Down Shooter", "Roguelike", "Action RPG", "Cartoony",
	"Comedy", "Flight", "2.5D", "Abstract", "Hack and Slash", "Collectathon",
	"Creature Collector", "Dungeon Crawler", "Deckbuilding", "Dark Fantasy", "Perma Death",
	"Character Customization", "Remake", "1990's", "Wholesome", "Cozy", "Clicker",
	"Vampire", "Walking Simulator", "Philosophical", "Short", "Emotional", "Surreal",
	"Psychological", "Dark Humor", "Party Game", "Fighting", "Wrestling", "3D Fighter",
	"Sandbox", "Interactive Fiction", "LGBTQ+", "Well-Written", "Based On A Novel", "Drama",
	"Life Sim", "Sokoban", "Nonlinear", "Music", "Instrumental Music", "Psychedelic",
	"Rock Music", "Investigation", "Time Travel", "Nostalgia", "Dark", "Great Soundtrack",
	"Dark Comedy", "Survival Horror", "Thriller", "Aliens", "3D Platformer", "Jet", "PvE",
	"Lore-Rich", "Magic", "Supernatural", "Minigames", "Souls-like", "Survival",
	"Open World Survival Craft", "Crafting", "Base Building", "Early Access", "Science",
	"Building", "Immersive Sim", "LEGO", "Turn-Based Tactics", "Tactical RPG",
	"Strategy RPG", "Turn-Based Strategy", "2D Fighter", "Psychological Horror",
	"Escape Room", "Baseball", "Archery", "Cycling", "Horses", "Skiing", "Mythology",
	"Inventory Management", "Dinosaurs", "Boomer Shooter", "Conspiracy", "Management",
	"Agriculture", "Automation", "Capitalism", "Economy", "Farming Sim", "Nature",
	"Roguelike Deckbuilder", "Card Battler", "Replay Value", "Farming", "6DOF",
	"Bullet Time", "Classic", "Gore", "World War I", "Detective", "Pinball", "Dragons",
	"Swordplay", "Space", "1980s", "Runner", "Quick-Time Events", "Time Manipulation",
	"Sexual Content", "NSFW", "Zombies", "Modern", "City Builder", "Grand Strategy",
	"Colony Sim", "Moddable", "Real-Time with Pause", "FMV", "Dynamic Narration",
	"Diplomacy", "Political", "Politics", "Crime", "Level Editor", "Action RTS", "Naval",
	"Pirates", "MMORPG", "Dwarf", "Driving", "Vehicular Combat", "On-Rails Shooter",
	"Combat Racing", "Satire", "Boss Rush", "Twin Stick Shooter", "Demons", "Gothic",
	"Automobile Sim", "Martial Arts", "Memes", "Ninja", "Trading", "Hex Grid", "Gambling",
	"CRPG", "Lovecraftian", "Superhero", "Class-Based", "Medical Sim", "Social Deduction",
	"Voxel", "Cult Classic", "Beautiful", "Immersive", "Nudity", "Underwater",
	"Underground", "PlayStation exclusive", "Unique", "3D Vision", "Battle Royale",
	"Hero Shooter", "Loot", "Hentai", "Epic", "Extraction Shooter", "Looter Shooter",
	"Job Simulator", "Tanks", "Wargame", "Steampunk", "Mechs", "Grid-Based Movement",
	"Offroad", "Mining", "8-bit Music", "Mature", "Blood", "Documentary", "Photo Editing",
	"Crowdfunded", "Poker", "Mystery Dungeon", "Dungeons & Dragons", "Split Screen",
	"Asynchronous Multiplayer", "Cooking", "Artificial Intelligence", "Tower Defense",
	"Music-Based Procedural Generation", "Electronic Music", "Experience", "God Game",
	"Touch-Friendly", "Sniper", "Transportation", "Villain Protagonist", "Tycoon games",
	"Kickstarter", "Word Game", "MOBA", "Trading Card Game", "Episodic",
	"Intentionally Awkward Controls", "Asymmetric VR", "Space Sim", "Roguevania",
	"Jump Scare", "Parody", "Ambient", "Addictive", "Reboot", "Traditional Roguelike",
	"Voice Control",
)
