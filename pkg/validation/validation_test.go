package validation

import "testing"

func TestNewReportIsValid(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should have no results")
	}
}

func TestAddErrorInvalidates(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelSchema, Message: "bad field", FieldPath: "equipment[0].name"})

	if r.Valid {
		t.Error("report with an error should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("errors = %d, want 1", len(r.Errors))
	}
	if r.Errors[0].Severity != SeverityError {
		t.Errorf("severity = %q, want %q", r.Errors[0].Severity, SeverityError)
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestWarningsAndInfoKeepValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelSchema, Message: "name empty", FieldPath: "facility.name"})
	r.AddInfo(Result{Level: LevelSchema, Message: "no equipment", FieldPath: "equipment"})

	if !r.Valid {
		t.Error("warnings and info must not invalidate a report")
	}
	if r.Warnings[0].Severity != SeverityWarning || r.Info[0].Severity != SeverityInfo {
		t.Error("severities not stamped onto results")
	}
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Message: "w"})

	b := NewReport()
	b.AddError(Result{Message: "e"})
	b.AddInfo(Result{Message: "i"})

	a.Merge(b)
	if a.Valid {
		t.Error("merging an invalid report must invalidate the target")
	}
	if len(a.Errors) != 1 || len(a.Warnings) != 1 || len(a.Info) != 1 {
		t.Errorf("merged counts = %d/%d/%d, want 1/1/1", len(a.Errors), len(a.Warnings), len(a.Info))
	}
	if a.Summary != "1 errors, 1 warnings, 1 info" {
		t.Errorf("summary = %q", a.Summary)
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := Errf(LevelSizing, "environment.panel_rating_watts", -450.0, "must be > 0")
	want := "sizing: environment.panel_rating_watts: must be > 0 (got -450)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := Errf(LevelSchema, "equipment[0].name", nil, "must not be empty")
	if bare.Error() != "schema: equipment[0].name: must not be empty" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
