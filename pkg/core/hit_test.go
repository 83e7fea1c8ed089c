package core

import "testing"

func TestHitRecord_SetFaceNormal(t *testing.T) {
	tests := []struct {
		name           string
		rayDirection   Vec3
		outwardNormal  Vec3
		wantFrontFace  bool
		expectedNormal Vec3
	}{
		{
			name:           "Ray opposes outward normal",
			rayDirection:   NewVec3(0, 0, -1),
			outwardNormal:  NewVec3(0, 0, 1),
			wantFrontFace:  true,
			expectedNormal: NewVec3(0, 0, 1),
		},
		{
			name:           "Ray along outward normal",
			rayDirection:   NewVec3(0, 0, 1),
			outwardNormal:  NewVec3(0, 0, 1),
			wantFrontFace:  false,
			expectedNormal: NewVec3(0, 0, -1),
		},
		{
			name:           "Grazing ray still flips",
			rayDirection:   NewVec3(1, 0.1, 0).Normalize(),
			outwardNormal:  NewVec3(0, 1, 0),
			wantFrontFace:  false,
			expectedNormal: NewVec3(0, -1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record HitRecord
			ray := NewRay(NewVec3(0, 0, 0), tt.rayDirection)
			record.SetFaceNormal(ray, tt.outwardNormal)

			if record.FrontFace != tt.wantFrontFace {
				t.Errorf("Expected FrontFace %v, got %v", tt.wantFrontFace, record.FrontFace)
			}
			if record.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, record.Normal)
			}
			// The oriented normal must never point along the ray
			if record.Normal.Dot(ray.Direction) > 0 {
				t.Errorf("Oriented normal %v points along the ray", record.Normal)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAt(NewVec3(1, 2, 3), NewVec3(0, 0, -2), 0.5)

	if at := ray.At(0); at != ray.Origin {
		t.Errorf("At(0) should be the origin, got %v", at)
	}
	expected := NewVec3(1, 2, -1)
	if at := ray.At(2); at != expected {
		t.Errorf("At(2): expected %v, got %v", expected, at)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %v", ray.Time)
	}
}
