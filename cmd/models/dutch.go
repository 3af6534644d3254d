package models

// dutchToScientific maps Dutch common names (lowercase, underscores) to
// scientific names. Model training used Dutch BirdNET-Pi labels; renaming
// the artifacts to scientific names makes them work with any language
// setting.
var dutchToScientific = map[string]string{
	"aalscholver":            "Phalacrocorax_carbo",
	"appelvink":              "Coccothraustes_coccothraustes",
	"baardman":               "Panurus_biarmicus",
	"barmsijs":               "Acanthis_flammea",
	"beflijster":             "Turdus_torquatus",
	"bergeend":               "Tadorna_tadorna",
	"bijeneter":              "Merops_apiaster",
	"blauwborst":             "Luscinia_svecica",
	"blauwe_kiekendief":      "Circus_cyaneus",
	"blauwe_reiger":          "Ardea_cinerea",
	"boerenzwaluw":           "Hirundo_rustica",
	"bokje":                  "Lymnocryptes_minimus",
	"bontbekplevier":         "Charadrius_hiaticula",
	"bonte_kraai":            "Corvus_cornix",
	"bonte_strandloper":      "Calidris_alpina",
	"bonte_vliegenvanger":    "Ficedula_hypoleuca",
	"boomklever":             "Sitta_europaea",
	"boomkruiper":            "Certhia_brachydactyla",
	"boomleeuwerik":          "Lullula_arborea",
	"boompieper":             "Anthus_trivialis",
	"boomvalk":               "Falco_subbuteo",
	"bosrietzanger":          "Acrocephalus_palustris",
	"bosruiter":              "Tringa_glareola",
	"bosuil":                 "Strix_aluco",
	"braamsluiper":           "Curruca_curruca",
	"brandgans":              "Branta_leucopsis",
	"brilduiker":             "Bucephala_clangula",
	"bruine_kiekendief":      "Circus_aeruginosus",
	"buidelmees":             "Remiz_pendulinus",
	"buizerd":                "Buteo_buteo",
	"canadese_gans":          "Branta_canadensis",
	"cettis_zanger":          "Cettia_cetti",
	"citroenkanarie":         "Crithagra_citrinella",
	"dodaars":                "Tachybaptus_ruficollis",
	"draaihals":              "Jynx_torquilla",
	"drieteenstrandloper":    "Calidris_alba",
	"dwergstern":             "Sternula_albifrons",
	"eider":                  "Somateria_mollissima",
	"ekster":                 "Pica_pica",
	"europese_kanarie":       "Serinus_serinus",
	"fazant":                 "Phasianus_colchicus",
	"fitis":                  "Phylloscopus_trochilus",
	"flamingo":               "Phoenicopterus_roseus",
	"fluiter":                "Phylloscopus_sibilatrix",
	"fuut":                   "Podiceps_cristatus",
	"gaai":                   "Garrulus_glandarius",
	"geelgors":               "Emberiza_citrinella",
	"gekraagde_roodstaart":   "Phoenicurus_phoenicurus",
	"gele_kwikstaart":        "Motacilla_flava",
	"gierzwaluw":             "Apus_apus",
	"glanskop":               "Poecile_palustris",
	"goudhaan":               "Regulus_regulus",
	"goudhaantje":            "Regulus_regulus",
	"goudplevier":            "Pluvialis_apricaria",
	"goudvink":               "Pyrrhula_pyrrhula",
	"grasmus":                "Curruca_communis",
	"graspieper":             "Anthus_pratensis",
	"graszanger":             "Cisticola_juncidis",
	"grauwe_gans":            "Anser_anser",
	"grauwe_gors":            "Emberiza_calandra",
	"grauwe_kiekendief":      "Circus_pygargus",
	"grauwe_klauwier":        "Lanius_collurio",
	"grauwe_vliegenvanger":   "Muscicapa_striata",
	"groene_specht":          "Picus_viridis",
	"groenling":              "Chloris_chloris",
	"groenpootruiter":        "Tringa_nebularia",
	"grote_bonte_specht":     "Dendrocopos_major",
	"grote_canadese_gans":    "Branta_canadensis",
	"grote_gele_kwikstaart":  "Motacilla_cinerea",
	"grote_karekiet":         "Acrocephalus_arundinaceus",
	"grote_lijster":          "Turdus_viscivorus",
	"grote_mantelmeeuw":      "Larus_marinus",
	"grote_stern":            "Thalasseus_sandvicensis",
	"grote_zaagbek":          "Mergus_merganser",
	"grote_zilverreiger":     "Ardea_alba",
	"grutto":                 "Limosa_limosa",
	"haakbek":                "Pinicola_enucleator",
	"havik":                  "Accipiter_gentilis",
	"heggenmus":              "Prunella_modularis",
	"holenduif":              "Columba_oenas",
	"hop":                    "Upupa_epops",
	"houtduif":               "Columba_palumbus",
	"houtsnip":               "Scolopax_rusticola",
	"huismus":                "Passer_domesticus",
	"huiszwaluw":             "Delichon_urbicum",
	"ijsvogel":               "Alcedo_atthis",
	"kanoetstrandloper":      "Calidris_canutus",
	"kauw":                   "Coloeus_monedula",
	"keep":                   "Fringilla_montifringilla",
	"kemphaan":               "Calidris_pugnax",
	"kerkuil":                "Tyto_alba",
	"kievit":                 "Vanellus_vanellus",
	"klapekster":             "Lanius_excubitor",
	"kleine_barmsijs":        "Acanthis_cabaret",
	"kleine_bonte_specht":    "Dryobates_minor",
	"kleine_karekiet":        "Acrocephalus_scirpaceus",
	"kleine_mantelmeeuw":     "Larus_fuscus",
	"kleine_plevier":         "Charadrius_dubius",
	"kleine_rietgans":        "Anser_brachyrhynchus",
	"kleine_strandloper":     "Calidris_minuta",
	"kleine_zilverreiger":    "Egretta_garzetta",
	"kleine_zwaan":           "Cygnus_columbianus",
	"kluut":                  "Recurvirostra_avosetta",
	"kneu":                   "Linaria_cannabina",
	"knobbelzwaan":           "Cygnus_olor",
	"koekoek":                "Cuculus_canorus",
	"koereiger":              "Bubulcus_ibis",
	"kokmeeuw":               "Chroicocephalus_ridibundus",
	"kolgans":                "Anser_albifrons",
	"koolmees":               "Parus_major",
	"koperwiek":              "Turdus_iliacus",
	"kortsnavelboomkruiper":  "Certhia_familiaris",
	"kraanvogel":             "Grus_grus",
	"krakeend":               "Mareca_strepera",
	"kramsvogel":             "Turdus_pilaris",
	"kruisbek":               "Loxia_curvirostra",
	"kuifeend":               "Aythya_fuligula",
	"kuifleeuwerik":          "Galerida_cristata",
	"kuifmees":               "Lophophanes_cristatus",
	"kwak":                   "Nycticorax_nycticorax",
	"kwartel":                "Coturnix_coturnix",
	"kwartelkoning":          "Crex_crex",
	"lepelaar":               "Platalea_leucorodia",
	"mandarijneend":          "Aix_galericulata",
	"matkop":                 "Poecile_montanus",
	"meerkoet":               "Fulica_atra",
	"merel":                  "Turdus_merula",
	"middelste_bonte_specht": "Dendrocoptes_medius",
	"middelste_zaagbek":      "Mergus_serrator",
	"nachtegaal":             "Luscinia_megarhynchos",
	"nachtzwaluw":            "Caprimulgus_europaeus",
	"nijlgans":               "Alopochen_aegyptiaca",
	"nonnetje":               "Mergellus_albellus",
	"noordse_stern":          "Sterna_paradisaea",
	"notenkraker":            "Nucifraga_caryocatactes",
	"oehoe":                  "Bubo_bubo",
	"oeverloper":             "Actitis_hypoleucos",
	"oeverzwaluw":            "Riparia_riparia",
	"ooievaar":               "Ciconia_ciconia",
	"orpheusspotvogel":       "Hippolais_polyglotta",
	"ortolaan":               "Emberiza_hortulana",
	"paapje":                 "Saxicola_rubetra",
	"patrijs":                "Perdix_perdix",
	"pestvogel":              "Bombycilla_garrulus",
	"pijlstaart":             "Anas_acuta",
	"pimpelmees":             "Cyanistes_caeruleus",
	"porseleinhoen":          "Porzana_porzana",
	"putter":                 "Carduelis_carduelis",
	"raaf":                   "Corvus_corax",
	"ransuil":                "Asio_otus",
	"regenwulp":              "Numenius_phaeopus",
	"rietgors":               "Emberiza_schoeniclus",
	"rietzanger":             "Acrocephalus_schoenobaenus",
	"ringmus":                "Passer_montanus",
	"rode_wouw":              "Milvus_milvus",
	"roek":                   "Corvus_frugilegus",
	"roerdomp":               "Botaurus_stellaris",
	"roodborst":              "Erithacus_rubecula",
	"roodborsttapuit":        "Saxicola_rubicola",
	"roodhalsfuut":           "Podiceps_grisegena",
	"roodkeelduiker":         "Gavia_stellata",
	"roodstuitzwaluw":        "Cecropis_daurica",
	"rosse_grutto":           "Limosa_lapponica",
	"rotsduif":               "Columba_livia",
	"scharrelaar":            "Coracias_garrulus",
	"scholekster":            "Haematopus_ostralegus",
	"sijs":                   "Spinus_spinus",
	"slechtvalk":             "Falco_peregrinus",
	"slobeend":               "Spatula_clypeata",
	"smelleken":              "Falco_columbarius",
	"smient":                 "Mareca_penelope",
	"sneeuwgors":             "Plectrophenax_nivalis",
	"snor":                   "Locustella_luscinioides",
	"specht":                 "Dendrocopos_major",
	"sperwer":                "Accipiter_nisus",
	"spotvogel":              "Hippolais_icterina",
	"spreeuw":                "Sturnus_vulgaris",
	"sprinkhaanzanger":       "Locustella_naevia",
	"staartmees":             "Aegithalos_caudatus",
	"stadsduif":              "Columba_livia",
	"steenloper":             "Arenaria_interpres",
	"steenuil":               "Athene_noctua",
	"stormmeeuw":             "Larus_canus",
	"strandplevier":          "Charadrius_alexandrinus",
	"tafeleend":              "Aythya_ferina",
	"taigaboomkruiper":       "Certhia_familiaris",
	"tapuit":                 "Oenanthe_oenanthe",
	"tjiftjaf":               "Phylloscopus_collybita",
	"toendrarietgans":        "Anser_serrirostris",
	"torenvalk":              "Falco_tinnunculus",
	"tuinfluiter":            "Sylvia_borin",
	"tureluur":               "Tringa_totanus",
	"turkse_tortel":          "Streptopelia_decaocto",
	"velduil":                "Asio_flammeus",
	"veldleeuwerik":          "Alauda_arvensis",
	"vink":                   "Fringilla_coelebs",
	"visarend":               "Pandion_haliaetus",
	"visdief":                "Sterna_hirundo",
	"vuurgoudhaan":           "Regulus_ignicapilla",
	"waterhoen":              "Gallinula_chloropus",
	"waterpieper":            "Anthus_spinoletta",
	"waterral":               "Rallus_aquaticus",
	"watersnip":              "Gallinago_gallinago",
	"wespendief":             "Pernis_apivorus",
	"wielewaal":              "Oriolus_oriolus",
	"wilde_eend":             "Anas_platyrhynchos",
	"wilde_zwaan":            "Cygnus_cygnus",
	"winterkoning":           "Troglodytes_troglodytes",
	"wintertaling":           "Anas_crecca",
	"witgat":                 "Tringa_ochropus",
	"witgatje":               "Tringa_ochropus",
	"witte_kwikstaart":       "Motacilla_alba",
	"woudaap":                "Ixobrychus_minutus",
	"wulp":                   "Numenius_arquata",
	"zanglijster":            "Turdus_philomelos",
	"zeearend":               "Haliaeetus_albicilla",
	"zilvermeeuw":            "Larus_argentatus",
	"zilverplevier":          "Pluvialis_squatarola",
	"zomertaling":            "Spatula_querquedula",
	"zomertortel":            "Streptopelia_turtur",
	"zwarte_kraai":           "Corvus_corone",
	"zwarte_mees":            "Periparus_ater",
	"zwarte_roodstaart":      "Phoenicurus_ochruros",
	"zwarte_ruiter":          "Tringa_erythropus",
	"zwarte_specht":          "Dryocopus_martius",
	"zwarte_stern":           "Chlidonias_niger",
	"zwarte_wouw":            "Milvus_migrans",
	"zwarte_zwaan":           "Cygnus_atratus",
	"zwartkop":               "Sylvia_atricapilla",
	"zwartkopmeeuw":          "Ichthyaetus_melanocephalus",
}
