package routes

import (
	"NovaClinic/config"
	"NovaClinic/repositories"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("SMTP_HOST", "")
	return SetupRoutes(&config.AppConfig{RegistrationCode: "JOHN200TIM#"}, Repos{
		Doctors:      repositories.NewMemoryDoctorRepository(),
		Patients:     repositories.NewMemoryPatientRepository(),
		Appointments: repositories.NewMemoryAppointmentRepository(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func registerDoctor(t *testing.T, router http.Handler) (token, doctorID string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/doctor/register", "", map[string]interface{}{
		"name":             "Dr. John",
		"email":            "doc@example.com",
		"password":         "Secret123!",
		"registrationCode": "JOHN200TIM#",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ = body["token"].(string)
	doctorID, _ = body["id"].(string)
	if token == "" || doctorID == "" {
		t.Fatalf("register response missing token or id: %v", body)
	}
	return token, doctorID
}

func TestClinicWorkflow(t *testing.T) {
	router := newTestRouter(t)

	token, doctorID := registerDoctor(t, router)

	// A visitor requests an appointment. No authentication is needed and the
	// response carries the patient record created on the fly.
	w := doJSON(t, router, http.MethodPost, "/api/appointments/request", "", map[string]interface{}{
		"name":          "Alice",
		"emailOrMobile": "alice@example.com",
		"date":          "2025-01-10",
		"time":          "10:00",
		"reason":        "checkup",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("request appointment status = %d, body = %s", w.Code, w.Body.String())
	}
	patient := decodeBody(t, w)
	patientID, _ := patient["id"].(string)
	if patientID == "" || patient["name"] != "Alice" {
		t.Fatalf("unexpected patient response: %v", patient)
	}

	// The doctor sees the new patient in the roster.
	w = doJSON(t, router, http.MethodGet, "/api/patients", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list patients status = %d, body = %s", w.Code, w.Body.String())
	}
	var patients []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &patients); err != nil {
		t.Fatalf("decode patients: %v", err)
	}
	if len(patients) != 1 || patients[0]["name"] != "Alice" {
		t.Fatalf("unexpected patients listing: %v", patients)
	}

	// The requested appointment starts out pending and is assigned to the
	// registered doctor.
	w = doJSON(t, router, http.MethodGet, "/api/patients/"+patientID+"/appointments", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list appointments status = %d, body = %s", w.Code, w.Body.String())
	}
	var appointments []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &appointments); err != nil {
		t.Fatalf("decode appointments: %v", err)
	}
	if len(appointments) != 1 || appointments[0]["status"] != "pending" {
		t.Fatalf("unexpected appointments: %v", appointments)
	}
	if appointments[0]["doctorId"] != doctorID {
		t.Fatalf("appointment doctorId = %v, want %s", appointments[0]["doctorId"], doctorID)
	}

	// The doctor books a follow-up directly; it is confirmed immediately.
	w = doJSON(t, router, http.MethodPost, "/api/appointments/doctor-create", token, map[string]interface{}{
		"patientId": patientID,
		"date":      "2025-02-01",
		"time":      "14:00",
		"reason":    "follow-up",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("doctor-create status = %d, body = %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)
	if created["status"] != "confirmed" {
		t.Fatalf("doctor-created appointment status = %v, want confirmed", created["status"])
	}
	appointmentID, _ := created["id"].(string)
	if appointmentID == "" {
		t.Fatalf("doctor-create response missing id: %v", created)
	}

	// After the visit the appointment is marked completed.
	w = doJSON(t, router, http.MethodPut, "/api/appointments/"+appointmentID, token, map[string]interface{}{
		"status": "completed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	if updated := decodeBody(t, w); updated["status"] != "completed" {
		t.Fatalf("updated appointment status = %v, want completed", updated["status"])
	}

	// The doctor's schedule shows both appointments.
	w = doJSON(t, router, http.MethodGet, "/api/doctors/"+doctorID+"/appointments", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("doctor appointments status = %d, body = %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &appointments); err != nil {
		t.Fatalf("decode doctor appointments: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("expected 2 appointments for doctor, got %d", len(appointments))
	}
}

func TestRequestAppointmentWithoutDoctors(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/appointments/request", "", map[string]interface{}{
		"name":          "Alice",
		"emailOrMobile": "alice@example.com",
		"date":          "2025-01-10",
		"time":          "10:00",
		"reason":        "checkup",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500, body = %s", w.Code, w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)
	registerDoctor(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/patients", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/patients", "not-a-real-token", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("bad token: status = %d, want 403, body = %s", w.Code, w.Body.String())
	}
}

func TestMedicalInfoEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerDoctor(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/appointments/request", "", map[string]interface{}{
		"name":          "Alice",
		"emailOrMobile": "alice@example.com",
		"date":          "2025-01-10",
		"time":          "10:00",
		"reason":        "checkup",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("request appointment status = %d, body = %s", w.Code, w.Body.String())
	}
	patientID, _ := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/patients/"+patientID+"/symptoms", token, map[string]interface{}{
		"description": "toothache",
		"severity":    "severe",
		"date":        "2025-01-09",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add symptom status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/patients/"+patientID+"/bills", token, map[string]interface{}{
		"description": "cleaning",
		"amount":      120.5,
		"status":      "unpaid",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add bill status = %d, body = %s", w.Code, w.Body.String())
	}

	// Unknown collection names are rejected.
	w = doJSON(t, router, http.MethodPost, "/api/patients/"+patientID+"/allergies", token, map[string]interface{}{
		"description": "pollen",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown info type status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	// Unknown patients yield 404.
	w = doJSON(t, router, http.MethodPost, "/api/patients/pat_missing/symptoms", token, map[string]interface{}{
		"description": "toothache",
		"severity":    "mild",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown patient status = %d, want 404, body = %s", w.Code, w.Body.String())
	}

	// The patient record now carries both entries.
	w = doJSON(t, router, http.MethodGet, "/api/patients/"+patientID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get patient status = %d, body = %s", w.Code, w.Body.String())
	}
	record := decodeBody(t, w)
	symptoms, _ := record["symptoms"].([]interface{})
	bills, _ := record["bills"].([]interface{})
	if len(symptoms) != 1 || len(bills) != 1 {
		t.Fatalf("record symptoms=%d bills=%d, want 1 and 1", len(symptoms), len(bills))
	}
}

func TestPublicPatientLookup(t *testing.T) {
	router := newTestRouter(t)
	registerDoctor(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/appointments/request", "", map[string]interface{}{
		"name":          "Alice",
		"emailOrMobile": "alice@example.com",
		"date":          "2025-01-10",
		"time":          "10:00",
		"reason":        "checkup",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("request appointment status = %d, body = %s", w.Code, w.Body.String())
	}
	patientID, _ := decodeBody(t, w)["id"].(string)

	// The public lookup needs no token and includes the appointment list so a
	// visitor can track their request status.
	w = doJSON(t, router, http.MethodGet, "/api/public/patients/"+patientID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public lookup status = %d, body = %s", w.Code, w.Body.String())
	}
	record := decodeBody(t, w)
	appointments, _ := record["appointments"].([]interface{})
	if len(appointments) != 1 {
		t.Fatalf("public record appointments = %d, want 1", len(appointments))
	}

	w = doJSON(t, router, http.MethodGet, "/api/public/patients/pat_missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("public lookup missing status = %d, want 404, body = %s", w.Code, w.Body.String())
	}
}

func TestLoginFlow(t *testing.T) {
	router := newTestRouter(t)
	registerDoctor(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/doctor/login", "", map[string]interface{}{
		"email":    "doc@example.com",
		"password": "Secret123!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}

	w = doJSON(t, router, http.MethodGet, "/api/patients", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list patients with login token status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/doctor/login", "", map[string]interface{}{
		"email":    "doc@example.com",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401, body = %s", w.Code, w.Body.String())
	}
}
