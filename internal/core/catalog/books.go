package catalog

var defaultCatalog = MustNew(
	BookGroup{Name: "Pentateuco", Books: []BookEntry{
		{ID: "Genesis", DisplayName: "Gênesis", ChapterCount: 50},
		{ID: "Exodus", DisplayName: "Êxodo", ChapterCount: 40},
		{ID: "Leviticus", DisplayName: "Levítico", ChapterCount: 27},
		{ID: "Numbers", DisplayName: "Números", ChapterCount: 36},
		{ID: "Deuteronomy", DisplayName: "Deuteronômio", ChapterCount: 34},
	}},
	BookGroup{Name: "Históricos", Books: []BookEntry{
		{ID: "Joshua", DisplayName: "Josué", ChapterCount: 24},
		{ID: "Judges", DisplayName: "Juízes", ChapterCount: 21},
		{ID: "Ruth", DisplayName: "Rute", ChapterCount: 4},
		{ID: "1 Samuel", DisplayName: "1 Samuel", ChapterCount: 31},
		{ID: "2 Samuel", DisplayName: "2 Samuel", ChapterCount: 24},
		{ID: "1 Kings", DisplayName: "1 Reis", ChapterCount: 22},
		{ID: "2 Kings", DisplayName: "2 Reis", ChapterCount: 25},
		{ID: "1 Chronicles", DisplayName: "1 Crônicas", ChapterCount: 29},
		{ID: "2 Chronicles", DisplayName: "2 Crônicas", ChapterCount: 36},
		{ID: "Ezra", DisplayName: "Esdras", ChapterCount: 10},
		{ID: "Nehemiah", DisplayName: "Neemias", ChapterCount: 13},
		{ID: "Esther", DisplayName: "Ester", ChapterCount: 10},
	}},
	BookGroup{Name: "Poéticos", Books: []BookEntry{
		{ID: "Job", DisplayName: "Jó", ChapterCount: 42},
		{ID: "Psalms", DisplayName: "Salmos", ChapterCount: 150},
		{ID: "Proverbs", DisplayName: "Provérbios", ChapterCount: 31},
		{ID: "Ecclesiastes", DisplayName: "Eclesiastes", ChapterCount: 12},
		{ID: "Song of Songs", DisplayName: "Cantares", ChapterCount: 8},
	}},
	BookGroup{Name: "Profetas Maiores", Books: []BookEntry{
		{ID: "Isaiah", DisplayName: "Isaías", ChapterCount: 66},
		{ID: "Jeremiah", DisplayName: "Jeremias", ChapterCount: 52},
		{ID: "Lamentations", DisplayName: "Lamentações", ChapterCount: 5},
		{ID: "Ezekiel", DisplayName: "Ezequiel", ChapterCount: 48},
		{ID: "Daniel", DisplayName: "Daniel", ChapterCount: 12},
	}},
	BookGroup{Name: "Profetas Menores", Books: []BookEntry{
		{ID: "Hosea", DisplayName: "Oséias", ChapterCount: 14},
		{ID: "Joel", DisplayName: "Joel", ChapterCount: 3},
		{ID: "Amos", DisplayName: "Amós", ChapterCount: 9},
		{ID: "Obadiah", DisplayName: "Obadias", ChapterCount: 1},
		{ID: "Jonah", DisplayName: "Jonas", ChapterCount: 4},
		{ID: "Micah", DisplayName: "Miquéias", ChapterCount: 7},
		{ID: "Nahum", DisplayName: "Naum", ChapterCount: 3},
		{ID: "Habakkuk", DisplayName: "Habacuque", ChapterCount: 3},
		{ID: "Zephaniah", DisplayName: "Sofonias", ChapterCount: 3},
		{ID: "Haggai", DisplayName: "Ageu", ChapterCount: 2},
		{ID: "Zechariah", DisplayName: "Zacarias", ChapterCount: 14},
		{ID: "Malachi", DisplayName: "Malaquias", ChapterCount: 4},
	}},
	BookGroup{Name: "Evangelhos", Books: []BookEntry{
		{ID: "Matthew", DisplayName: "Mateus", ChapterCount: 28},
		{ID: "Mark", DisplayName: "Marcos", ChapterCount: 16},
		{ID: "Luke", DisplayName: "Lucas", ChapterCount: 24},
		{ID: "John", DisplayName: "João", ChapterCount: 21},
	}},
	BookGroup{Name: "Histórico", Books: []BookEntry{
		{ID: "Acts", DisplayName: "Atos", ChapterCount: 28},
	}},
	BookGroup{Name: "Cartas Paulinas", Books: []BookEntry{
		{ID: "Romans", DisplayName: "Romanos", ChapterCount: 16},
		{ID: "1 Corinthians", DisplayName: "1 Coríntios", ChapterCount: 16},
		{ID: "2 Corinthians", DisplayName: "2 Coríntios", ChapterCount: 13},
		{ID: "Galatians", DisplayName: "Gálatas", ChapterCount: 6},
		{ID: "Ephesians", DisplayName: "Efésios", ChapterCount: 6},
		{ID: "Philippians", DisplayName: "Filipenses", ChapterCount: 4},
		{ID: "Colossians", DisplayName: "Colossenses", ChapterCount: 4},
		{ID: "1 Thessalonians", DisplayName: "1 Tessalonicenses", ChapterCount: 5},
		{ID: "2 Thessalonians", DisplayName: "2 Tessalonicenses", ChapterCount: 3},
		{ID: "1 Timothy", DisplayName: "1 Timóteo", ChapterCount: 6},
		{ID: "2 Timothy", DisplayName: "2 Timóteo", ChapterCount: 4},
		{ID: "Titus", DisplayName: "Tito", ChapterCount: 3},
		{ID: "Philemon", DisplayName: "Filemom", ChapterCount: 1},
	}},
	BookGroup{Name: "Cartas Gerais", Books: []BookEntry{
		{ID: "Hebrews", DisplayName: "Hebreus", ChapterCount: 13},
		{ID: "James", DisplayName: "Tiago", ChapterCount: 5},
		{ID: "1 Peter", DisplayName: "1 Pedro", ChapterCount: 5},
		{ID: "2 Peter", DisplayName: "2 Pedro", ChapterCount: 3},
		{ID: "1 John", DisplayName: "1 João", ChapterCount: 5},
		{ID: "2 John", DisplayName: "2 João", ChapterCount: 1},
		{ID: "3 John", DisplayName: "3 João", ChapterCount: 1},
		{ID: "Jude", DisplayName: "Judas", ChapterCount: 1},
	}},
	BookGroup{Name: "Profético", Books: []BookEntry{
		{ID: "Revelation", DisplayName: "Apocalipse", ChapterCount: 22},
	}},
)

// Default is the 66 book Portuguese catalog grouped the traditional way
func Default() Catalog { return defaultCatalog }
