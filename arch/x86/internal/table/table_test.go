package table

import "testing"

// Every slot in the top-level tables must be a non-nil *Entry so that
// dispatch's Lookup call never has to special-case a missing table entry
// separately from an explicit Blank one.
func TestTopLevelTablesHaveNoNilSlots(t *testing.T) {
	check := func(name string, tbl [256]*Entry) {
		for i, e := range tbl {
			if e == nil {
				t.Errorf("%s[0x%02x] is nil, want an explicit Blank entry", name, i)
			}
		}
	}
	check("Primary", Primary)
	check("Secondary", Secondary)
	check("Ext38", Ext38)
	check("Ext3A", Ext3A)
}

func TestLookup_NilEntryIsSafe(t *testing.T) {
	var e *Entry
	if got, _ := e.Lookup(0, 0, 0, false, MPNone, 0); got != nil {
		t.Errorf("Lookup on a nil *Entry = %v, want nil", got)
	}
}

func TestLookup_BlankReturnsItself(t *testing.T) {
	b := blank()
	got, usedModRM := b.Lookup(3, 5, 1, true, MPF2, 1)
	if got != b {
		t.Errorf("Lookup on a Blank entry should return itself immediately")
	}
	if usedModRM {
		t.Errorf("a bare Blank lookup must not report a ModR/M dependency")
	}
}

func TestLookup_ReportsModRMUseThroughExtensions(t *testing.T) {
	ext := &Entry{Kind: ExtByReg}
	for i := range ext.ByReg {
		ext.ByReg[i] = term(0)
	}
	_, usedModRM := ext.Lookup(2, 0, 3, false, MPNone, 0)
	if !usedModRM {
		t.Errorf("an ExtByReg walk must report that ModR/M was consulted")
	}

	wExt := &Entry{Kind: ExtByRexW, ByRexW: [2]*Entry{term(0), term(0)}}
	_, usedModRM = wExt.Lookup(0, 0, 0, true, MPNone, 0)
	if usedModRM {
		t.Errorf("an ExtByRexW walk never consults ModR/M")
	}
}

func TestByMandatory_NilAlternativesBecomeBlank(t *testing.T) {
	e := byMandatory(term(0), nil, nil, nil)
	if e.ByMandatory[MP66].Kind != Blank {
		t.Errorf("ByMandatory[MP66].Kind = %v, want Blank", e.ByMandatory[MP66].Kind)
	}
	if e.ByMandatory[MPNone].Kind != Terminal {
		t.Errorf("ByMandatory[MPNone].Kind = %v, want Terminal", e.ByMandatory[MPNone].Kind)
	}
}

func TestVexEntry_Lookup_UnpopulatedSlotIsBlank(t *testing.T) {
	v := new(VexEntry)
	e := v.Lookup(false, MPNone, false, false)
	if e == nil || e.Kind != Blank {
		t.Errorf("Lookup on an empty VexEntry = %+v, want a Blank entry", e)
	}
}

func TestVexEntry_Lookup_NilReceiverIsSafe(t *testing.T) {
	var v *VexEntry
	e := v.Lookup(false, MPNone, false, false)
	if e == nil || e.Kind != Blank {
		t.Errorf("Lookup on a nil *VexEntry = %+v, want a Blank entry", e)
	}
}
