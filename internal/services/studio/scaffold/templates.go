package scaffold

const body2D = `// Requires p5.js: https://p5js.org
let player;
let platforms = [];
let gravity = 0.6;
let score = 0;

function setup() {
  createCanvas(800, 600);
  player = { x: 100, y: 300, w: 30, h: 30, vy: 0, speed: 5, onGround: false };
  platforms.push({ x: 0, y: 560, w: 800, h: 40 });
  platforms.push({ x: 250, y: 440, w: 160, h: 20 });
  platforms.push({ x: 500, y: 340, w: 160, h: 20 });
}

function draw() {
  background(30, 32, 44);

  // Movement
  if (keyIsDown(LEFT_ARROW)) player.x -= player.speed;
  if (keyIsDown(RIGHT_ARROW)) player.x += player.speed;
  player.x = constrain(player.x, 0, width - player.w);

  // Gravity and collisions
  player.vy += gravity;
  player.y += player.vy;
  player.onGround = false;
  for (const p of platforms) {
    if (player.x + player.w > p.x && player.x < p.x + p.w &&
        player.y + player.h > p.y && player.y + player.h < p.y + p.h + player.vy + 1) {
      player.y = p.y - player.h;
      player.vy = 0;
      player.onGround = true;
    }
  }

  // Draw world
  fill(66, 153, 225);
  for (const p of platforms) rect(p.x, p.y, p.w, p.h);
  fill(245, 101, 101);
  rect(player.x, player.y, player.w, player.h);

  fill(255);
  textSize(18);
  text('Score: ' + score, 20, 30);
}

function keyPressed() {
  if ((keyCode === UP_ARROW || key === ' ') && player.onGround) {
    player.vy = -12;
    score++;
  }
}
`

const body3D = `import * as THREE from 'three';
import { OrbitControls } from 'three/examples/jsm/controls/OrbitControls';

let scene, camera, renderer, player;

function init() {
  scene = new THREE.Scene();
  camera = new THREE.PerspectiveCamera(75, window.innerWidth / window.innerHeight, 0.1, 1000);
  renderer = new THREE.WebGLRenderer();
  renderer.setSize(window.innerWidth, window.innerHeight);
  document.body.appendChild(renderer.domElement);

  const controls = new OrbitControls(camera, renderer.domElement);

  // Add lighting
  const light = new THREE.DirectionalLight(0xffffff, 1);
  light.position.set(5, 5, 5);
  scene.add(light);

  // Create player object
  const playerGeometry = new THREE.SphereGeometry(1, 32, 32);
  const playerMaterial = new THREE.MeshBasicMaterial({ color: 0x00ff00 });
  player = new THREE.Mesh(playerGeometry, playerMaterial);
  player.position.set(0, 0, 0);
  scene.add(player);

  // Add basic environment
  const groundGeometry = new THREE.PlaneGeometry(50, 50);
  const groundMaterial = new THREE.MeshBasicMaterial({ color: 0x555555, side: THREE.DoubleSide });
  const ground = new THREE.Mesh(groundGeometry, groundMaterial);
  ground.rotation.x = Math.PI / 2;
  ground.position.y = -2;
  scene.add(ground);

  camera.position.z = 10;

  animate();
}

function animate() {
  requestAnimationFrame(animate);
  // Add your game logic here
  renderer.render(scene, camera);
}

window.addEventListener('keydown', (e) => {
  // Basic movement controls
  if (e.key === 'ArrowUp') player.position.z -= 0.2;
  if (e.key === 'ArrowDown') player.position.z += 0.2;
  if (e.key === 'ArrowLeft') player.position.x -= 0.2;
  if (e.key === 'ArrowRight') player.position.x += 0.2;
});

init();`
