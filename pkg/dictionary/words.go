package dictionary

// Default English word list. Words are 4 to 10 letters long so the common
// length bounds always leave a usable pool.
var defaultWords = []string{
	"abandon", "ability", "absence", "academy", "account", "achieve",
	"acquire", "address", "advance", "adventure", "advice", "afford",
	"afternoon", "against", "airport", "alcohol", "alliance", "already",
	"although", "amount", "analysis", "ancient", "animal", "announce",
	"another", "answer", "anxiety", "anybody", "apartment", "apparent",
	"approach", "approval", "argument", "arrange", "arrival", "article",
	"artist", "assume", "athlete", "atmosphere", "attempt", "attention",
	"attitude", "audience", "author", "autumn", "average", "balance",
	"banana", "barrier", "battery", "beautiful", "because", "bedroom",
	"believe", "benefit", "between", "bicycle", "biology", "blanket",
	"border", "bottle", "boulder", "boundary", "branch", "breakfast",
	"breath", "bridge", "brilliant", "brother", "budget", "builder",
	"burden", "business", "butter", "cabinet", "calendar", "camera",
	"campaign", "canvas", "capable", "capital", "captain", "capture",
	"carbon", "career", "careful", "carpet", "carrot", "castle",
	"catalog", "category", "ceiling", "center", "century", "ceremony",
	"chairman", "chamber", "champion", "channel", "chapter", "character",
	"charity", "chicken", "children", "chimney", "chocolate", "choice",
	"church", "cinema", "circle", "citizen", "classic", "climate",
	"closet", "clothes", "cluster", "coast", "coffee", "college",
	"colour", "column", "comfort", "command", "comment", "common",
	"company", "compare", "compete", "complete", "computer", "concert",
	"conclude", "concrete", "confirm", "connect", "consider", "contact",
	"contain", "content", "contest", "context", "contract", "control",
	"convince", "cookie", "copper", "corner", "correct", "cottage",
	"cotton", "council", "counter", "country", "courage", "cousin",
	"coverage", "create", "creature", "credit", "cricket", "critic",
	"crystal", "culture", "curious", "current", "curtain", "custom",
	"damage", "danger", "daughter", "debate", "decade", "decide",
	"declare", "decline", "defend", "degree", "deliver", "demand",
	"deposit", "describe", "desert", "design", "desire", "despite",
	"dessert", "detail", "detect", "develop", "device", "diamond",
	"dinner", "direct", "discover", "discuss", "disease", "display",
	"distance", "district", "divide", "doctor", "dollar", "domain",
	"double", "dragon", "drawer", "dream", "driver", "during",
	"eager", "earlier", "earnest", "economy", "edition", "editor",
	"educate", "effect", "effort", "eighteen", "either", "elbow",
	"element", "elephant", "eleven", "emerge", "emotion", "employ",
	"enable", "energy", "engine", "enhance", "enjoy", "enough",
	"ensure", "entire", "entrance", "envelope", "episode", "equal",
	"escape", "estate", "evening", "evidence", "exact", "examine",
	"example", "excellent", "exchange", "excite", "exercise", "exhibit",
	"expand", "expect", "expense", "explain", "explore", "express",
	"extend", "extent", "fabric", "factor", "factory", "failure",
	"famous", "fantasy", "farmer", "fashion", "feather", "feature",
	"fiction", "fifteen", "fifty", "figure", "finance", "finger",
	"finish", "fitness", "flight", "flower", "follow", "football",
	"foreign", "forest", "forget", "formal", "former", "fortune",
	"forward", "found", "fourteen", "freedom", "friend", "frozen",
	"function", "future", "galaxy", "gallery", "garden", "gather",
	"general", "genuine", "giant", "glance", "global", "golden",
	"gossip", "govern", "grammar", "grateful", "gravity", "grocery",
	"ground", "growth", "guard", "guess", "guest", "guide",
	"guitar", "habit", "hammer", "handle", "happen", "harbor",
	"hazard", "health", "heaven", "height", "helmet", "herself",
	"hidden", "highway", "himself", "history", "holiday", "honest",
	"horizon", "hospital", "hotel", "house", "however", "hundred",
	"hungry", "hunter", "husband", "identify", "ignore", "illegal",
	"image", "imagine", "impact", "import", "impress", "improve",
	"include", "income", "increase", "indeed", "indicate", "industry",
	"initial", "injury", "inquiry", "insect", "inside", "inspire",
	"install", "instance", "instead", "intend", "interest", "interior",
	"invest", "invite", "involve", "island", "itself", "jacket",
	"journal", "journey", "judge", "jungle", "junior", "justice",
	"kitchen", "knife", "ladder", "language", "laptop", "large",
	"laugh", "launch", "lawyer", "leader", "league", "learn",
	"leather", "lecture", "legend", "leisure", "length", "lesson",
	"letter", "level", "library", "license", "light", "likely",
	"limit", "listen", "little", "living", "local", "locate",
	"logic", "lonely", "lucky", "luggage", "lumber", "machine",
	"magazine", "magic", "magnet", "manage", "manner", "marble",
	"margin", "market", "master", "material", "matter", "maximum",
	"meaning", "measure", "medical", "medium", "member", "memory",
	"mention", "message", "metal", "method", "middle", "million",
	"minister", "minute", "mirror", "mission", "mistake", "mixture",
	"moment", "monitor", "monkey", "monster", "month", "morning",
	"mother", "motion", "motor", "mountain", "mouse", "movie",
	"muscle", "museum", "music", "mystery", "narrow", "nation",
	"native", "nature", "nearby", "needle", "neighbor", "network",
	"night", "nobody", "normal", "north", "notice", "notion",
	"number", "object", "observe", "obtain", "obvious", "occasion",
	"ocean", "offer", "office", "officer", "onion", "opinion",
	"option", "orange", "orbit", "order", "ordinary", "organ",
	"origin", "other", "outcome", "outside", "oven", "owner",
	"oxygen", "package", "palace", "paper", "parent", "partner",
	"party", "passage", "patient", "pattern", "pause", "payment",
	"peace", "pencil", "people", "pepper", "percent", "perfect",
	"perform", "period", "permit", "person", "phone", "photo",
	"phrase", "physical", "piano", "picture", "piece", "pilot",
	"pioneer", "pitch", "place", "planet", "plastic", "platform",
	"player", "pleasant", "pledge", "plenty", "pocket", "poetry",
	"point", "policy", "politics", "pollution", "popular", "portion",
	"position", "positive", "possible", "potato", "pottery", "poverty",
	"powder", "power", "practice", "praise", "predict", "prefer",
	"prepare", "present", "pressure", "pretty", "prevent", "price",
	"pride", "primary", "prince", "principle", "printer", "priority",
	"prison", "private", "prize", "problem", "process", "produce",
	"product", "profile", "profit", "program", "project", "promise",
	"promote", "proof", "proper", "property", "propose", "protect",
	"proud", "provide", "public", "publish", "pupil", "purchase",
	"purple", "purpose", "pursue", "puzzle", "quality", "quarter",
	"question", "quick", "quiet", "rabbit", "radar", "radio",
	"raise", "range", "rather", "reach", "react", "reason",
	"recall", "receive", "recent", "recipe", "record", "recover",
	"reduce", "reflect", "reform", "refuse", "regard", "region",
	"regret", "regular", "reject", "relate", "release", "relief",
	"remain", "remember", "remind", "remove", "repair", "repeat",
	"replace", "reply", "report", "request", "require", "rescue",
	"research", "reserve", "resident", "resist", "resource", "respect",
	"respond", "result", "retain", "retire", "return", "reveal",
	"review", "reward", "rhythm", "ribbon", "river", "rocket",
	"romance", "rough", "round", "route", "routine", "royal",
	"rubber", "rural", "sadness", "safety", "salad", "salmon",
	"sample", "satisfy", "sauce", "scale", "scene", "schedule",
	"scheme", "school", "science", "scissors", "screen", "script",
	"search", "season", "second", "secret", "section", "sector",
	"secure", "select", "senior", "sense", "sentence", "separate",
	"series", "serious", "servant", "service", "session", "settle",
	"seven", "seventy", "several", "severe", "shadow", "share",
	"sharp", "shelter", "shine", "shirt", "shock", "shore",
	"short", "shoulder", "shower", "signal", "silence", "silver",
	"similar", "simple", "singer", "single", "sister", "sixteen",
	"sketch", "skill", "sleep", "slice", "slight", "small",
	"smart", "smile", "smooth", "soccer", "social", "society",
	"solid", "solution", "solve", "someone", "source", "south",
	"space", "speak", "special", "speech", "speed", "spend",
	"sphere", "spirit", "sport", "spread", "spring", "square",
	"stable", "staff", "stage", "stair", "stand", "standard",
	"start", "state", "station", "statue", "status", "steady",
	"steel", "stick", "still", "stomach", "stone", "store",
	"storm", "story", "strange", "stream", "street", "strength",
	"stretch", "strike", "string", "strong", "structure", "student",
	"studio", "study", "stuff", "style", "subject", "submit",
	"succeed", "success", "sudden", "suffer", "sugar", "suggest",
	"summer", "sunset", "supply", "support", "suppose", "surface",
	"surprise", "survey", "survive", "suspect", "sweet", "switch",
	"symbol", "system", "table", "tackle", "talent", "target",
	"teach", "teacher", "television", "temple", "tennis", "terrible",
	"territory", "theater", "theory", "thick", "thing", "think",
	"thirty", "thought", "thousand", "threat", "three", "throat",
	"through", "throw", "thunder", "ticket", "tiger", "timber",
	"tissue", "title", "toast", "today", "together", "tomato",
	"tomorrow", "tongue", "tonight", "tooth", "topic", "total",
	"touch", "tough", "tourist", "toward", "tower", "track",
	"trade", "traffic", "train", "transfer", "travel", "treat",
	"trend", "trial", "tribe", "trick", "trouble", "truck",
	"trust", "truth", "tunnel", "turkey", "twelve", "twenty",
	"typical", "umbrella", "uncle", "under", "unique", "unite",
	"unknown", "until", "update", "upgrade", "urban", "urgent",
	"useful", "usual", "vacation", "valley", "value", "variety",
	"vehicle", "venture", "version", "victim", "victory", "video",
	"village", "violin", "virtue", "visible", "vision", "visit",
	"visual", "vital", "voice", "volume", "voyage", "wagon",
	"wander", "warning", "watch", "water", "wealth", "weapon",
	"weather", "website", "wedding", "weekend", "weight", "welcome",
	"western", "whale", "wheel", "while", "whisper", "white",
	"whole", "window", "winner", "winter", "wisdom", "within",
	"without", "witness", "woman", "wonder", "wooden", "world",
	"worry", "worth", "write", "writer", "yellow", "young",
	"yourself", "youth", "zebra",
}
