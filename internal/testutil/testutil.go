// Package testutil provides shared fixtures and request helpers for
// analysis tests.
package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

// UploadFile is one file attached to a multipart request.
type UploadFile struct {
	Name string
	Data []byte
}

// MultipartRequest builds a multipart POST request carrying one "paper"
// file and any number of "code" files, the way the upload form submits
// them. A paper with an empty name is omitted from the form.
func MultipartRequest(t *testing.T, target string, paper UploadFile, code ...UploadFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if paper.Name != "" {
		fw, err := w.CreateFormFile("paper", paper.Name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(paper.Data); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range code {
		fw, err := w.CreateFormFile("code", f.Name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// SamplePaperText is a paper fragment that mentions several vocabulary
// terms and a prose learning rate.
func SamplePaperText() []byte {
	return []byte(`We train a transformer model with the Adam optimizer
using a learning rate of 0.001 and a batch size of 32.
The attention layers use dropout 0.1.`)
}

// SampleTrainingScript is a well-formed training script with imports, seed
// calls and hyperparameter assignments.
func SampleTrainingScript() []byte {
	return []byte(`import torch
import numpy as np
from torch import nn

learning_rate = 0.001
batch_size = 32

def set_seed():
    torch.manual_seed(42)
    np.random.seed(42)

def train(model, data):
    optimizer = torch.optim.Adam(model.parameters(), lr=learning_rate)
    return model

class Trainer:
    def step(self):
        pass
`)
}

// SampleBrokenScript fails a structural parse but still carries signals the
// regex fallback can recover.
func SampleBrokenScript() []byte {
	return []byte(`import torch

def train(
    lr = 0.01
torch.manual_seed(7)
`)
}
