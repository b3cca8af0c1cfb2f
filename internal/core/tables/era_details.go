package tables

// EraNarratives holds the long-form narrative columns keyed by column
// name, then by era. Eras absent from a map get a null cell, not a
// placeholder; downstream charts filter nulls.
var EraNarratives = map[string]map[string]string{
	"Cultural Developments": {
		"Indus Valley Civilization": "Advanced urban planning, standardized weights and measures, sophisticated drainage systems, and possibly the development of the Indus script.",
		"Vedic Period":              "Composition of the Vedas, development of Sanskrit, early Hindu rituals and practices, and emergence of the caste system.",
		"Mauryan Empire":            "Buddhist art and architecture, rock-cut edicts, development of political philosophy through Arthashastra.",
		"Gupta Empire":              "Golden Age of art, literature, and science. Sanskrit literature flourished with works of Kalidasa. Development of classical Indian music and dance forms.",
		"Delhi Sultanate":           "Indo-Islamic fusion in art, architecture, and music. Introduction of Persian literary traditions.",
		"Mughal Empire":             "Height of Indo-Islamic cultural synthesis. Miniature painting, Mughal architecture, Urdu poetry, and music flourished.",
		"Colonial Era":              "Western influence on Indian culture, English education, modern literature, Bengal Renaissance.",
		"Independence Movement":     "Revival of traditional arts as part of swadeshi movement, development of nationalist literature and music.",
		"Republic of India":         "Constitutional framework, democratic institutions, secularism, and cultural pluralism.",
		"Modern India":              "Digital revolution, global cultural influence through cinema and technology, fusion of traditional and modern art forms.",
	},
	"Religious Trends": {
		"Indus Valley Civilization": "Evidence of nature worship, ritual baths, and possibly proto-Shiva worship.",
		"Vedic Period":              "Vedic religion with fire sacrifices, nature deities, and ritual practices that evolved into early Hinduism.",
		"Ancient India":             "Rise of heterodox traditions like Buddhism and Jainism as reactions to Brahmanical orthodoxy.",
		"Mauryan Empire":            "State patronage of Buddhism under Ashoka, spread of Buddhist missionaries to South and Southeast Asia.",
		"Gupta Empire":              "Revival of Hinduism, particularly Vaishnavism and Shaivism, with continued Buddhist and Jain influence.",
		"Medieval India":            "Introduction of Islam, development of Bhakti and Sufi movements emphasizing devotion and mysticism.",
		"Mughal Empire":             "Syncretic religious policies under Akbar, attempts at creating Din-i-Ilahi, followed by more orthodox Islamic policies under Aurangzeb.",
		"Colonial Era":              "Religious reform movements in Hinduism, Islam, and Sikhism; Christian missionary activities.",
		"Independence Movement":     "Religious identities becoming intertwined with nationalist politics, ultimately leading to partition.",
		"Republic of India":         "Constitutional secularism, religious pluralism, and legal reforms of religious practices.",
	},
	"Economic Systems": {
		"Indus Valley Civilization": "Trade-based economy with standardized weights and measures, agriculture, crafts, and long-distance trade with Mesopotamia.",
		"Vedic Period":              "Pastoral and agricultural economy, barter system, and emergence of occupational specialization.",
		"Mauryan Empire":            "Centralized economy with royal ownership of mines and forests, taxation system, and trade regulations described in Arthashastra.",
		"Gupta Empire":              "Guild-based manufacturing, extensive trade networks, agricultural surplus, and sophisticated monetary system.",
		"Delhi Sultanate":           "Feudal system, iqta land grants, agricultural taxation, and state monopolies on certain trades.",
		"Mughal Empire":             "Sophisticated revenue system under Akbar (zabti), extensive international trade, and growth of urban manufacturing centers.",
		"Colonial Era":              "Extractive colonial economy, deindustrialization, plantation agriculture, and integration into British imperial economic system.",
		"Independence Movement":     "Emphasis on economic self-sufficiency, boycott of British goods, and promotion of indigenous industries.",
		"Republic of India":         "Mixed economy with five-year plans, public sector dominance, agricultural reforms, and later economic liberalization.",
		"Economic Reforms":          "Liberalization, privatization, and globalization of the Indian economy, rapid growth in services sector.",
		"Modern India":              "Digital economy, startup ecosystem, service sector dominance, and integration into global supply chains.",
	},
	"Art & Architecture": {
		"Indus Valley Civilization": "Planned cities with grid layouts, advanced drainage systems, Great Bath at Mohenjo-daro, and small sculptures like the Dancing Girl.",
		"Mauryan Empire":            "Pillars with animal capitals, especially the Sarnath Lion Capital, rock-cut architecture, and early Buddhist stupas.",
		"Gupta Empire":              "Temple architecture, Ajanta and Ellora caves, sophisticated metal sculptures, and refined painting techniques.",
		"Delhi Sultanate":           "Indo-Islamic architecture with arches and domes, Qutub Minar, and fortress construction.",
		"Vijayanagara Empire":       "Temple complexes at Hampi with elaborate sculptural programs, musical pillars, and water systems.",
		"Mughal Empire":             "Taj Mahal, Red Fort, Humayun's Tomb, miniature painting, intricate carpets, and jewelry craftsmanship.",
		"Colonial Era":              "Indo-Saracenic architecture, Company School painting, and fusion of European and Indian artistic traditions.",
		"Republic of India":         "Modernist architecture in Chandigarh by Le Corbusier, Bengal School of Art, and post-independence artistic movements.",
	},
	"Territorial Extent": {
		"Mauryan Empire":      "At its peak under Ashoka, extended from Afghanistan to Bengal and from the Himalayas to modern Karnataka.",
		"Gupta Empire":        "Northern India, from the Indus River to Bengal, and from the Himalayas to the Narmada River.",
		"Delhi Sultanate":     "Varying control over Northern India, with brief expansion into the Deccan under Muhammad bin Tughlaq.",
		"Vijayanagara Empire": "Most of South India, particularly modern Karnataka, Andhra Pradesh, Tamil Nadu, and parts of Kerala.",
		"Mughal Empire":       "At its height under Aurangzeb, controlled almost the entire subcontinent except the southernmost regions.",
		"Maratha Empire":      "Central India, with influence extending from Delhi in the north to Tamil Nadu in the south.",
		"British Raj":         "Direct rule over most of the subcontinent, with princely states as protectorates, Burma (until 1937), and parts of Southeast Asia.",
	},
	"Social Structure": {
		"Vedic Period":      "Emergence of varna system (Brahmin, Kshatriya, Vaishya, Shudra), patriarchal family structure, and tribal organization.",
		"Ancient India":     "Crystallization of the caste system, urban merchant classes, guilds of artisans, and monastic communities.",
		"Gupta Empire":      "Complex caste-based society, powerful Brahmin class, guild organizations, and village self-governance.",
		"Medieval India":    "Feudal relationships, emergence of Rajput clans, strengthening of caste boundaries, and status of women declining in upper castes.",
		"Mughal Empire":     "Mansabdari system of nobles, religious pluralism under Akbar, complex court hierarchy, and urban merchant communities.",
		"Colonial Era":      "Codification of caste, emergence of Western-educated elite, and new professional classes.",
		"Republic of India": "Constitutional protections for disadvantaged groups, affirmative action, urbanization, and changing family structures.",
	},
	"Scientific Advances": {
		"Indus Valley Civilization": "Advanced drainage systems, standardized weights and measures, and knowledge of astronomy for agricultural calendars.",
		"Vedic Period":              "Early astronomical observations, mathematical concepts in Vedic rituals, and medicinal knowledge in Atharvaveda.",
		"Gupta Empire":              "Aryabhata's work on astronomy and mathematics, concept of zero, decimal system, calculation of pi, and trigonometry.",
		"Medieval India":            "Advancements in algebra, astronomy, and medicine through scholars like Brahmagupta and Bhaskara II.",
		"Mughal Empire":             "Astronomical observatories (Jantar Mantar), metallurgy, and synthesis of Indian and Persian medical traditions.",
		"Colonial Era":              "Introduction of Western scientific education, establishment of scientific institutions, and early Indian participation in modern science.",
		"Republic of India":         "Development of nuclear and space programs, biotechnology, pharmaceutical industry, and information technology.",
	},
	"Technological Innovations": {
		"Indus Valley Civilization": "Precise standardized weights and measures, advanced metallurgy, sophisticated urban planning, and possibly docks for water transport.",
		"Ancient India":             "Iron technology, steel production (wootz steel), shipbuilding, textile techniques, and water management systems.",
		"Gupta Empire":              "Advanced metallurgy (Iron Pillar of Delhi), medical procedures described by Sushruta, and sophisticated textile production.",
		"Medieval India":            "Paper manufacturing, water wheels, irrigation systems, and fortress construction techniques.",
		"Mughal Empire":             "Advances in textile production, metalworking, gunpowder weapons, and architectural engineering.",
		"Colonial Era":              "Railways, telegraph, modern irrigation systems, and mechanized industries.",
		"Post-Independence":         "Green Revolution agricultural technologies, nuclear power, space program, and early computer systems.",
		"Modern India":              "Software development, pharmaceutical manufacturing, renewable energy technologies, and digital payment systems.",
	},
	"Military Developments": {
		"Mauryan Empire":    "Large standing army with specialized divisions for infantry, cavalry, chariots, and elephants, described in detail in Arthashastra.",
		"Gupta Empire":      "Skilled cavalry and elephant corps, development of the composite bow, and fortress defense strategies.",
		"Delhi Sultanate":   "Introduction of heavy cavalry tactics, siege engines, and Turkish military organization.",
		"Mughal Empire":     "Gunpowder weapons including artillery, matchlock infantry (Banduqchi), and sophisticated cavalry tactics.",
		"Maratha Empire":    "Guerrilla warfare techniques, swift cavalry movements, and hill fort defense systems.",
		"Colonial Era":      "Creation of British Indian Army, modern military organization, and incorporation of Indian martial traditions.",
		"Republic of India": "Development of modern military with indigenous defense production, nuclear weapons, and professional armed forces.",
	},
	"Foreign Relations": {
		"Ancient India":     "Diplomatic and trade contacts with Greek states following Alexander's invasion, embassy exchanges with the Roman Empire.",
		"Mauryan Empire":    "Diplomatic relations with Hellenistic kingdoms, especially the Seleucids, embassy of Megasthenes, and Buddhist missions abroad.",
		"Gupta Empire":      "Trade and cultural exchanges with Southeast Asia, China, and the Byzantine Empire.",
		"Medieval India":    "Arab trade networks, diplomatic contacts with China, and influences from Central Asia.",
		"Mughal Empire":     "Diplomatic relations with Safavid Persia, Ottoman Empire, and various European powers.",
		"British Raj":       "India as part of the British imperial system, participation in World Wars, and colonial foreign policy.",
		"Republic of India": "Non-alignment policy during Cold War, leadership in Non-Aligned Movement, and later strategic partnerships.",
	},
	"Historical Legacy": {
		"Indus Valley Civilization": "Urban planning concepts, possible continuities in religious iconography, and early standardization systems.",
		"Vedic Period":              "Foundational texts of Hinduism, Sanskrit language and literature, and early philosophical concepts.",
		"Mauryan Empire":            "Concepts of imperial governance, Ashoka's principles of dharma and non-violence, and Buddhist heritage.",
		"Gupta Empire":              "Classical traditions in art, literature, and science, Hindu temple architecture, and mathematical innovations.",
		"Delhi Sultanate":           "Indo-Islamic cultural synthesis, architectural traditions, and administrative systems.",
		"Mughal Empire":             "Architectural monuments, miniature painting tradition, Urdu language, and administrative systems adopted by later states.",
		"Colonial Era":              "Modern educational institutions, legal system, railways and infrastructure, and English language.",
		"Independence Movement":     "Principles of non-violent resistance, democratic aspirations, and anti-colonial ideology.",
		"Republic of India":         "Constitutional democracy, pluralistic society, and principles of secularism and federalism.",
	},
}

// EventNarratives patches narrative cells for landmark events whose era
// mapping left them null. Keyed by narrative column, then by an event-name
// substring.
var EventNarratives = map[string]map[string]string{
	"Military Developments": {
		"Battle of Plassey": "British victory through superior artillery and infantry tactics, showcasing European military advantage over traditional Indian armies.",
	},
	"Cultural Developments": {
		"Gandhi returns": "Introduction of Gandhian principles of simplicity, self-sufficiency, and non-violence that profoundly influenced Indian cultural values.",
	},
	"Economic Systems": {
		"Economic liberalization": "Dismantling of License Raj, reduction of import tariffs, opening to foreign investment, and currency devaluation to address balance of payments crisis.",
	},
}
