package catalog

import (
	"reflect"
	"testing"
)

func testRosterRows() []RosterEntry {
	return []RosterEntry{
		{StudentName: "Karim Zed", Promotion: "L3 Télécom", Group: "G1", Subgroup: "SG1"},
		{StudentName: "Amel Sari", Promotion: "L3 Télécom", Group: "G1", Subgroup: "SG1"},
		{StudentName: "Yacine Brahimi", Promotion: "L3 Télécom", Group: "G1", Subgroup: "SG2"},
		{StudentName: "Lina Kaci", Promotion: "L3 Télécom", Group: "G2", Subgroup: "SG1"},
		{StudentName: "Omar Tlemçani", Promotion: "L2 ELT", Group: "G1", Subgroup: "SG1"},
	}
}

func TestStudentsFor_OrderAndContent(t *testing.T) {
	ix := NewRosterIndex(testRosterRows())

	students := ix.StudentsFor("L3 Télécom", "G1", "SG1")
	if len(students) != 2 {
		t.Fatalf("2 étudiants attendus, obtenu %d", len(students))
	}
	// L'ordre source est conservé
	if students[0].StudentName != "Karim Zed" || students[1].StudentName != "Amel Sari" {
		t.Errorf("ordre source attendu [Karim Zed, Amel Sari], obtenu [%s, %s]",
			students[0].StudentName, students[1].StudentName)
	}
}

func TestStudentsFor_UnknownUnitIsEmptyNotError(t *testing.T) {
	ix := NewRosterIndex(testRosterRows())

	students := ix.StudentsFor("L3 Télécom", "G9", "SG1")
	if students == nil {
		t.Fatal("un sous-groupe inconnu doit donner un slice vide, pas nil")
	}
	if len(students) != 0 {
		t.Errorf("slice vide attendu, obtenu %d éléments", len(students))
	}
}

func TestGroupsForAndSubgroupsFor(t *testing.T) {
	ix := NewRosterIndex(testRosterRows())

	if got := ix.GroupsFor("L3 Télécom"); !reflect.DeepEqual(got, []string{"G1", "G2"}) {
		t.Errorf("groupes attendus [G1 G2], obtenus %v", got)
	}
	if got := ix.SubgroupsFor("L3 Télécom", "G1"); !reflect.DeepEqual(got, []string{"SG1", "SG2"}) {
		t.Errorf("sous-groupes attendus [SG1 SG2], obtenus %v", got)
	}
	if got := ix.GroupsFor("Promo inconnue"); len(got) != 0 {
		t.Errorf("aucun groupe attendu pour une promotion inconnue, obtenu %v", got)
	}
}
