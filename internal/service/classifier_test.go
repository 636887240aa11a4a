package service

import "testing"

func TestClassify_PriorityOrder(t *testing.T) {
	cases := []struct {
		label string
		want  SessionType
	}{
		{"Cours Magistral Réseaux", SessionCours},
		{"TD Réseaux", SessionTD},
		{"TP Électronique", SessionTP},
		{"Séminaire doctoral", SessionAutre},
		// COURS est vérifié avant TD : le libellé mixte part en COURS
		{"Cours Magistral TD Appliqué", SessionCours},
		// TD avant TP
		{"TD de TP préparatoire", SessionTD},
	}

	for _, c := range cases {
		if got := Classify(c.label); got != c.want {
			t.Errorf("Classify(%q) = %s, attendu %s", c.label, got, c.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if Classify("cours de maths") != SessionCours {
		t.Error("la classification doit être insensible à la casse")
	}
	if Classify("td réseaux") != SessionTD {
		t.Error("la classification doit être insensible à la casse")
	}
}

func TestClassify_Total(t *testing.T) {
	// Totale : tout libellé, même vide, obtient un type
	if Classify("") != SessionAutre {
		t.Error("un libellé vide doit être classé AUTRE")
	}
}

func TestWeight(t *testing.T) {
	if SessionCours.Weight() != 1.5 {
		t.Errorf("poids COURS attendu 1.5, obtenu %v", SessionCours.Weight())
	}
	for _, st := range []SessionType{SessionTD, SessionTP, SessionAutre} {
		if st.Weight() != 1.0 {
			t.Errorf("poids %s attendu 1.0, obtenu %v", st, st.Weight())
		}
	}
}
